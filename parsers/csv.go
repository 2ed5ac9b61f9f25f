package parsers

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
)

// ParseCSV reads "team,member" rows. A leading "Team,Member" header row is
// skipped, and blank lines are ignored. Member names are passed through
// trimmed but otherwise unchecked; the tournament rules validate them.
func ParseCSV(r io.Reader) ([]RosterRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows := []RosterRow{}
	first := true
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		if first {
			first = false
			if isHeader(cells) {
				continue
			}
		}

		row, err := rosterRow(cells, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
