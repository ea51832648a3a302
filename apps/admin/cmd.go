package main

import (
	"errors"
	"flag"
	"fmt"
	"syscall"

	"golang.org/x/term"

	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	sessionSvc *session.Service
	schoolSvc  *school.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed - restore every collection to its canned state")
	fmt.Println("  adduser -name NAME -email EMAIL -role ROLE - add a user; the password will be prompted next")
	fmt.Println("  exportresults [-out FILE] - export exam results to an Excel workbook")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's email.")
	addUserRole := addUserCmd.String("role", "", "One of: admin, teacher, student.")

	exportCmd := flag.NewFlagSet("exportresults", flag.ExitOnError)
	exportOut := exportCmd.String("out", "exam_results.xlsx", "Destination file.")

	switch args[1] {
	case "seed":
		return cli.seed()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" || *addUserRole == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserEmail, *addUserRole, string(pwd))
	case "exportresults":
		if err := exportCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.exportResults(*exportOut)
	default:
		cli.printUsage()
		return errHelp
	}
}
