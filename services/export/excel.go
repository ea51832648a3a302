// Package export renders exam-result exports: an Excel workbook for the
// admin CLI and CSV for the screen's export action.
package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/edumanage/backend/core/school"
)

var resultHeader = []string{"Student Name", "Subject", "Exam Type", "Teacher", "Term", "Score", "Status"}

// ResultsWorkbook is a single-sheet workbook of exam results with a bold,
// filterable header and heuristic column widths.
type ResultsWorkbook struct {
	File *excelize.File
}

func NewResultsWorkbook(results []school.ExamResult) (*ResultsWorkbook, error) {
	const sheet = "Exam Results"

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	bold, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})

	for col, h := range resultHeader {
		cell := fmt.Sprintf("%s1", colName(col+1))
		if err := f.SetCellStr(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	end := colName(len(resultHeader)) + "1"
	_ = f.SetCellStyle(sheet, "A1", end, bold)
	_ = f.AutoFilter(sheet, "A1:"+end, nil)

	rows := resultRows(results)
	for r, row := range rows {
		for c, val := range row {
			cell := fmt.Sprintf("%s%d", colName(c+1), r+2)
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return nil, fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
	}

	// heuristic widths from the header and the first rows
	for c := 1; c <= len(resultHeader); c++ {
		maxim := len(resultHeader[c-1])
		for r := 0; r < minim(50, len(rows)); r++ {
			if l := len(rows[r][c-1]); l > maxim {
				maxim = l
			}
		}
		w := float64(maxim) * 0.9
		if w < 12 {
			w = 12
		}
		if w > 40 {
			w = 40
		}
		_ = f.SetColWidth(sheet, colName(c), colName(c), w)
	}

	return &ResultsWorkbook{File: f}, nil
}

func (w *ResultsWorkbook) SaveAs(path string) error {
	return w.File.SaveAs(path)
}

func (w *ResultsWorkbook) Bytes() (*bytes.Buffer, error) {
	return w.File.WriteToBuffer()
}

func resultRows(results []school.ExamResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.StudentName, r.Subject, r.ExamType, r.Teacher, r.Term,
			fmt.Sprintf("%d", r.Score), r.Status,
		})
	}
	return rows
}

// helpers
func colName(n int) string {
	s := ""
	for n > 0 {
		n--
		s = string(rune('A'+(n%26))) + s
		n /= 26
	}
	return s
}

func minim(a, b int) int {
	if a < b {
		return a
	}
	return b
}
