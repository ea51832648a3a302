package export

import (
	"bytes"
	"encoding/csv"

	"github.com/edumanage/backend/core/school"
)

// ResultsCSV renders one row per result under the standard header.
func ResultsCSV(results []school.ExamResult) (*bytes.Buffer, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(resultHeader); err != nil {
		return nil, err
	}
	for _, row := range resultRows(results) {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf, w.Error()
}
