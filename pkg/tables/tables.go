// Package tables reads the two input tables (staff roster, shift
// requirements) and writes the three output tables (raw schedule,
// per-employee summary, human view) as header-named CSV files.
package tables

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// header maps column names to their index in each record.
type header map[string]int

// readTable reads a CSV table and verifies that every required column is
// present. Rows are returned without the header record.
func readTable(r io.Reader, required []string) (header, [][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read table: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("table is empty, expected a header row")
	}

	h := make(header, len(records[0]))
	for i, name := range records[0] {
		h[strings.TrimSpace(name)] = i
	}

	var missing []string
	for _, name := range required {
		if _, ok := h[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return h, records[1:], nil
}

// field returns the named column of a record, empty when the column is
// absent from the table.
func (h header) field(record []string, name string) string {
	idx, ok := h[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func writeAll(w io.Writer, records [][]string) error {
	cw := csv.NewWriter(w)
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
