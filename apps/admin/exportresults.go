package main

import (
	"context"

	"github.com/edumanage/backend/services/export"
)

// exportResults writes the full exam-result collection to an Excel
// workbook at the given path.
func (cli *commandLine) exportResults(path string) error {
	results, err := cli.schoolSvc.Results.List(context.Background())
	if err != nil {
		return err
	}
	wb, err := export.NewResultsWorkbook(results)
	if err != nil {
		return err
	}
	return wb.SaveAs(path)
}
