package parsers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

const TEAM_COL_NAME = "Team"
const MEMBER_COL_NAME = "Member"

// RosterRow assigns one member to one team. Line is the 1-based source line
// (CSV) or table row (HTML) the entry came from.
type RosterRow struct {
	Team   string
	Member string
	Line   int
}

// ParseRoster picks a parser from the file extension of name. Files without a
// recognised extension are read as CSV.
func ParseRoster(name string, r io.Reader) ([]RosterRow, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return ParseHTML(r)
	case ".csv", ".txt", "":
		return ParseCSV(r)
	default:
		return nil, fmt.Errorf("unsupported roster file type %q", filepath.Ext(name))
	}
}

func isHeader(cells []string) bool {
	return len(cells) == 2 &&
		strings.EqualFold(cells[0], TEAM_COL_NAME) &&
		strings.EqualFold(cells[1], MEMBER_COL_NAME)
}

func rosterRow(cells []string, line int) (RosterRow, error) {
	if len(cells) != 2 {
		return RosterRow{}, fmt.Errorf("line %d: expected 2 cells (team, member), got %d", line, len(cells))
	}
	row := RosterRow{
		Team:   strings.TrimSpace(cells[0]),
		Member: strings.TrimSpace(cells[1]),
		Line:   line,
	}
	if row.Team == "" {
		return RosterRow{}, fmt.Errorf("line %d: team name is empty", line)
	}
	return row, nil
}
