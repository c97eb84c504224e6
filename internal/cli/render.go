package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// report is one command's output: JSON payload plus a tabular view. The
// footer only appears in table output; tsv and json stay plain data.
type report struct {
	payload any
	headers []string
	rows    [][]string
	footer  []string
	aligns  []text.Align
}

// resolveFormat turns "auto" into "table" for terminals and "tsv" otherwise.
func resolveFormat(w io.Writer, format string) string {
	if format != "auto" && format != "" {
		return format
	}
	if isTerminal(w) {
		return "table"
	}
	return "tsv"
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func render(w io.Writer, format string, r report) error {
	switch resolveFormat(w, format) {
	case "json":
		data, err := json.MarshalIndent(r.payload, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "tsv":
		return writeTSV(w, r.rows)
	case "table":
		_, err := fmt.Fprintln(w, renderTable(r))
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func writeTSV(w io.Writer, rows [][]string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

// renderTable lays the report out as a rounded box. Headers and footer keep
// their case; headers are left-aligned, cells and footer follow the column
// alignment.
func renderTable(r report) string {
	if len(r.headers) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	tw.AppendHeader(toRow(r.headers, len(r.headers)))
	for _, row := range r.rows {
		tw.AppendRow(toRow(row, len(r.headers)))
	}
	if len(r.footer) > 0 && len(r.rows) > 0 {
		tw.AppendFooter(toRow(r.footer, len(r.headers)))
	}

	configs := make([]table.ColumnConfig, len(r.headers))
	for i := range configs {
		align := text.AlignLeft
		if i < len(r.aligns) {
			align = r.aligns[i]
		}
		configs[i] = table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignFooter: align,
			AlignHeader: text.AlignLeft,
		}
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// toRow pads or truncates cells to width columns.
func toRow(cells []string, width int) table.Row {
	row := make(table.Row, width)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
