package main

import (
	"context"

	"github.com/edumanage/backend/core/session"
)

// addUser registers a new identity with a hashed password.
func (cli *commandLine) addUser(name, email, role, pwd string) error {
	_, err := cli.sessionSvc.CreateUser(context.Background(), name, email, session.Role(role), pwd)
	return err
}
