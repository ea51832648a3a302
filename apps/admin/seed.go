package main

import "context"

// seed restores the canned collections, dropping any persisted changes.
func (cli *commandLine) seed() error {
	ctx := context.Background()
	if err := cli.schoolSvc.ResetAll(ctx); err != nil {
		return err
	}
	return cli.sessionSvc.Reset(ctx)
}
