// Package output renders hook listings for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/samhoang/micbot/internal/config"
	"github.com/samhoang/micbot/internal/db"
)

// ActiveSuffix marks the active hook in table output
const ActiveSuffix = " (ACTIVE)"

// HookRecord is the serialized form of a listed hook
type HookRecord struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	Active bool   `json:"active" yaml:"active"`
}

// Options control rendering
type Options struct {
	Format string
	Color  bool
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	activeStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("42")).Bold(true)
)

// Records converts store entries to their serialized form
func Records(entries []db.Entry) []HookRecord {
	records := make([]HookRecord, 0, len(entries))
	for _, e := range entries {
		records = append(records, HookRecord{Name: e.Name, URL: e.URL, Active: e.Active})
	}
	return records
}

// WriteHooks renders entries to w in the requested format
func WriteHooks(w io.Writer, entries []db.Entry, opts Options) error {
	switch opts.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(Records(entries))

	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(entries)); err != nil {
			return err
		}
		return enc.Close()

	case config.FormatTable, "":
		_, err := fmt.Fprintln(w, Table(entries, opts.Color))
		return err
	}

	return fmt.Errorf("unknown output format %q", opts.Format)
}

// Table renders entries as a bordered grid with NAME and URL columns
func Table(entries []db.Entry, color bool) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name
		if e.Active {
			name += ActiveSuffix
		}
		rows = append(rows, []string{name, e.URL})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		Headers("NAME", "URL").
		Rows(rows...)

	if color {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(entries) && entries[row].Active:
				return activeStyle
			default:
				return cellStyle
			}
		})
	} else {
		t = t.StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})
	}

	return t.String()
}
