package main

import (
	"log"
	"os"

	"github.com/edumanage/backend/core"
	"github.com/edumanage/backend/core/school"
	"github.com/edumanage/backend/core/session"
	"github.com/edumanage/backend/storage/kv"
	inmemkv "github.com/edumanage/backend/storage/kv/inmem"
	"github.com/edumanage/backend/storage/kv/postgres"
	"github.com/edumanage/backend/storage/kv/redisdb"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up storage
	db, err := openKV(conf)
	errAndDie(err)
	defer db.Close()

	// start CLI
	cli := commandLine{
		sessionSvc: session.NewService(db, nil),
		schoolSvc:  school.NewService(db, nil, nil),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func openKV(conf *core.Config) (kv.DB, error) {
	switch conf.Storage.Backend {
	case "redis":
		return redisdb.Open(conf)
	case "postgres":
		return postgres.Open(conf)
	default:
		return inmemkv.NewDB(), nil
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
