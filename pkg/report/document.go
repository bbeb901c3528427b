package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
)

// Document is the machine-readable form of a run.
type Document struct {
	Days []DayDocument `json:"days" yaml:"days"`
}

// DayDocument is one solved day within a Document.
type DayDocument struct {
	Day       int             `json:"day"        yaml:"day"`
	Title     string          `json:"title"      yaml:"title"`
	Answers   []puzzle.Answer `json:"answers"    yaml:"answers"`
	Records   int             `json:"records"    yaml:"records"`
	ElapsedMS float64         `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// NewDocument converts results into a Document.
func NewDocument(results []puzzle.Result) Document {
	doc := Document{Days: make([]DayDocument, 0, len(results))}

	for _, res := range results {
		doc.Days = append(doc.Days, DayDocument{
			Day:       res.Day,
			Title:     res.Title,
			Answers:   res.Answers,
			Records:   res.Records,
			ElapsedMS: float64(res.Elapsed.Microseconds()) / 1000,
		})
	}

	return doc
}

// Catalog is the machine-readable list of registered days.
type Catalog struct {
	Days []CatalogEntry `json:"days" yaml:"days"`
}

// CatalogEntry describes one registered day.
type CatalogEntry struct {
	Day   int    `json:"day"   yaml:"day"`
	Title string `json:"title" yaml:"title"`
	Input string `json:"input" yaml:"input"`
}

// NewCatalog converts descriptors into a Catalog.
func NewCatalog(days []puzzle.Descriptor) Catalog {
	c := Catalog{Days: make([]CatalogEntry, 0, len(days))}

	for _, d := range days {
		c.Days = append(c.Days, CatalogEntry{Day: d.Day, Title: d.Title, Input: inputLabel(d)})
	}

	return c
}

func inputLabel(d puzzle.Descriptor) string {
	if d.Input == input.ModeRaw {
		return "raw"
	}

	return "trimmed"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return nil
}
