package parsers

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseHTML reads the first <table> in a document, such as a roster page
// saved from a browser or a spreadsheet "save as HTML". Each body row must
// have a team cell and a member cell. Rows made only of <th> cells, and a
// "Team | Member" header row, are skipped.
func ParseHTML(r io.Reader) ([]RosterRow, error) {
	z := html.NewTokenizer(r)
	rows := []RosterRow{}

	isTable := false
	isTableRow := false
	isTableCell := false
	isHeaderCell := false
	rowHasData := false
	rowNumber := 0
	cells := []string{}
	var cell strings.Builder

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, err
			}
			return rows, nil
		case html.StartTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "table":
				if isTable {
					continue
				}
				isTable = true
			case "tr":
				if !isTable {
					continue
				}
				isTableRow = true
				rowHasData = false
				cells = cells[:0]
			case "td", "th":
				if !isTableRow {
					continue
				}
				isTableCell = true
				isHeaderCell = string(name) == "th"
				if !isHeaderCell {
					rowHasData = true
				}
				cell.Reset()
			}
		case html.TextToken:
			if isTableCell {
				cell.Write(z.Text())
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "td", "th":
				if isTableCell {
					cells = append(cells, strings.Join(strings.Fields(cell.String()), " "))
					isTableCell = false
				}
			case "tr":
				if !isTableRow {
					continue
				}
				isTableRow = false
				rowNumber++
				if !rowHasData || isHeader(cells) {
					continue
				}
				row, err := rosterRow(cells, rowNumber)
				if err != nil {
					return nil, err
				}
				rows = append(rows, row)
			case "table":
				if isTable {
					return rows, nil
				}
			}
		}
	}
}
