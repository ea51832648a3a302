package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
	inmemkv "github.com/edumanage/backend/storage/kv/inmem"
)

func setup(t *testing.T) *commandLine {
	t.Helper()
	db := inmemkv.NewDB()
	return &commandLine{
		sessionSvc: session.NewService(db, nil),
		schoolSvc:  school.NewService(db, nil, nil),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
	extra   interface{}
}

func Test_commandLine_addUser(t *testing.T) {
	cli := setup(t)

	type extra struct {
		pwd string
	}
	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "no args", args: []string{"adduser"}, wantErr: errHelp},
		{name: "missing role", args: []string{"adduser", "-name", "Grace Hopper", "-email", "grace@school.com"}, wantErr: errHelp},
		{
			name:    "flags but no password",
			args:    []string{"adduser", "-name", "Grace Hopper", "-email", "grace@school.com", "-role", "teacher"},
			wantErr: errHelp,
		},
		{
			name:  "added",
			args:  []string{"adduser", "-name", "Grace Hopper", "-email", "GRACE@school.com", "-role", "teacher"},
			extra: extra{pwd: "s3cret!"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		readPasswordFunc = func(fd int) ([]byte, error) {
			if extra, ok := tt.extra.(extra); ok {
				return []byte(extra.pwd), nil
			}
			return nil, nil
		}

		t.Run(tt.name, func(t *testing.T) {
			err := cli.run(args)
			if err == nil {
				usr, err := cli.sessionSvc.GetUserByEmail(context.Background(), "grace@school.com")
				if err != nil {
					t.Fatalf("GetUserByEmail(): %v", err)
				}
				if usr.Role != session.RoleTeacher {
					t.Errorf("Role = %v; want %v", usr.Role, session.RoleTeacher)
				}
				if bcrypt.CompareHashAndPassword(usr.PasswordHash, []byte("s3cret!")) != nil {
					t.Error("stored hash does not match the prompted password")
				}
			} else if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_commandLine_addUser_invalidRole(t *testing.T) {
	cli := setup(t)

	readPasswordFunc = func(fd int) ([]byte, error) { return []byte("s3cret!"), nil }

	args := []string{"admin", "adduser", "-name", "Grace Hopper", "-email", "grace@school.com", "-role", "principal"}
	if err := cli.run(args); err == nil {
		t.Error("cli.run() accepted an invalid role")
	}
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)
	ctx := context.Background()

	// mutate persisted state, then seed back
	if err := cli.schoolSvc.Students.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete(): %v", err)
	}

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}

	students, err := cli.schoolSvc.Students.List(ctx)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if want := len(school.SeedStudents()); len(students) != want {
		t.Errorf("students = %v; want %v", len(students), want)
	}
}

func Test_commandLine_exportResults(t *testing.T) {
	cli := setup(t)

	out := filepath.Join(t.TempDir(), "results.xlsx")
	if err := cli.run([]string{"admin", "exportresults", "-out", out}); err != nil {
		t.Fatalf("cli.run() error = %v", err)
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("os.Stat(): %v", err)
	}
	if info.Size() == 0 {
		t.Error("exported workbook is empty")
	}
}
