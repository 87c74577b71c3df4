package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// readOrderNumbers returns the first column of every non-empty row.
func readOrderNumbers(r io.Reader, skipHeader bool) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var out []string
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if line == 1 && skipHeader {
			continue
		}
		out = append(out, record[0])
	}
	return out, nil
}
