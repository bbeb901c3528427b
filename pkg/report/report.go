// Package report renders puzzle results for humans and machines.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

// ErrUnknownFormat is returned for an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat converts a case-insensitive format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Renderer writes results in one format.
type Renderer struct {
	format  Format
	heading *color.Color
	value   *color.Color
}

// NewRenderer creates a renderer. Colors apply to the text format only.
func NewRenderer(format Format, noColor bool) *Renderer {
	heading := color.New(color.FgCyan, color.Bold)
	value := color.New(color.FgGreen)

	if noColor {
		heading.DisableColor()
		value.DisableColor()
	} else {
		heading.EnableColor()
		value.EnableColor()
	}

	return &Renderer{format: format, heading: heading, value: value}
}

// Results writes the answers of every solved day.
func (r *Renderer) Results(w io.Writer, results []puzzle.Result) error {
	switch r.format {
	case FormatText:
		return r.resultsText(w, results)
	case FormatJSON:
		return writeJSON(w, NewDocument(results))
	case FormatYAML:
		return writeYAML(w, NewDocument(results))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func (r *Renderer) resultsText(w io.Writer, results []puzzle.Result) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Day", "Title", "Part", "Answer", "Records", "Elapsed"})

	for _, res := range results {
		for _, a := range res.Answers {
			tbl.AppendRow(table.Row{
				r.heading.Sprint(dayLabel(res.Day)),
				res.Title,
				fmt.Sprintf("%d (%s)", a.Part, a.Label),
				r.value.Sprint(humanize.Comma(a.Value)),
				humanize.Comma(int64(res.Records)),
				res.Elapsed.Round(time.Microsecond).String(),
			})
		}
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("Total: %d days", len(results))})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Days writes the registered puzzles.
func (r *Renderer) Days(w io.Writer, days []puzzle.Descriptor) error {
	switch r.format {
	case FormatText:
		tbl := newTable()
		tbl.AppendHeader(table.Row{"Day", "Title", "Input"})

		for _, d := range days {
			tbl.AppendRow(table.Row{r.heading.Sprint(dayLabel(d.Day)), d.Title, inputLabel(d)})
		}

		_, err := fmt.Fprintln(w, tbl.Render())
		if err != nil {
			return fmt.Errorf("write report: %w", err)
		}

		return nil
	case FormatJSON:
		return writeJSON(w, NewCatalog(days))
	case FormatYAML:
		return writeYAML(w, NewCatalog(days))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, r.format)
	}
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

func dayLabel(day int) string {
	return "Day " + strconv.Itoa(day)
}
