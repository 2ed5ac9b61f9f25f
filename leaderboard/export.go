package leaderboard

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatHTML Format = "html"
	FormatXLSX Format = "xlsx"
	FormatPNG  Format = "png"
)

const DefaultExportFile = "tournament_leaderboard.csv"

var ErrUnsupportedFormat = errors.New("unsupported export format")
var ErrEmptyBoard = errors.New("No teams or scores to export.")

var formatsByExt = map[string]Format{
	".csv":  FormatCSV,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
	".html": FormatHTML,
	".htm":  FormatHTML,
	".xlsx": FormatXLSX,
	".png":  FormatPNG,
}

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatYAML, FormatHTML, FormatXLSX, FormatPNG:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// FormatFromPath picks the export format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := formatsByExt[ext]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// Export encodes the board in the given format. An empty board is refused,
// as there is nothing for the operator to keep.
func Export(w io.Writer, b Board, f Format) error {
	if len(b.Entries) == 0 {
		return ErrEmptyBoard
	}
	switch f {
	case FormatCSV:
		return WriteCSV(w, b)
	case FormatYAML:
		return WriteYAML(w, b)
	case FormatHTML:
		return WriteHTML(w, b)
	case FormatXLSX:
		return WriteXLSX(w, b)
	case FormatPNG:
		return WriteChart(w, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func WriteCSV(w io.Writer, b Board) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(b.Table()); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

func WriteYAML(w io.Writer, b Board) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&b); err != nil {
		return fmt.Errorf("encoding to YAML failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding to YAML failed on close: %w", err)
	}
	return nil
}
