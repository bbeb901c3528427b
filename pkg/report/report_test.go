package report_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/aoc/pkg/input"
	"github.com/Sumatoshi-tech/aoc/pkg/puzzle"
	"github.com/Sumatoshi-tech/aoc/pkg/report"
)

const testLargeAnswer = 3121910778619

func sampleResults() []puzzle.Result {
	return []puzzle.Result{
		{
			Day:   3,
			Title: "Lobby",
			Answers: []puzzle.Answer{
				{Part: 1, Label: "output joltage", Value: 357},
				{Part: 2, Label: "override joltage", Value: testLargeAnswer},
			},
			Records: 4,
			Elapsed: 1500 * time.Microsecond,
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]report.Format{
		"text": report.FormatText,
		"JSON": report.FormatJSON,
		" yaml": report.FormatYAML,
	} {
		got, err := report.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := report.ParseFormat("xml")
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestResults_Text(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatText, true).Results(&buf, sampleResults()))

	out := buf.String()
	assert.Contains(t, out, "Day 3")
	assert.Contains(t, out, "Lobby")
	assert.Contains(t, out, "1 (output joltage)")
	assert.Contains(t, out, "3,121,910,778,619")
	assert.Contains(t, out, "1.5ms")
	assert.Contains(t, out, "Total: 1 days")
	assert.NotContains(t, out, "\x1b[")
}

func TestResults_TextColored(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatText, false).Results(&buf, sampleResults()))

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestResults_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatJSON, false).Results(&buf, sampleResults()))

	var doc struct {
		Days []struct {
			Day       int             `json:"day"`
			Answers   []puzzle.Answer `json:"answers"`
			ElapsedMS float64         `json:"elapsed_ms"`
		} `json:"days"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Days, 1)
	assert.Equal(t, 3, doc.Days[0].Day)
	assert.Equal(t, sampleResults()[0].Answers, doc.Days[0].Answers)
	assert.InDelta(t, 1.5, doc.Days[0].ElapsedMS, 1e-9)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestResults_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatYAML, false).Results(&buf, sampleResults()))

	var doc map[string][]map[string]any

	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc["days"], 1)
	assert.Equal(t, "Lobby", doc["days"][0]["title"])
}

func TestDays(t *testing.T) {
	t.Parallel()

	days := []puzzle.Descriptor{
		{Day: 1, Title: "Secret Entrance", Input: input.ModeTrimmed},
		{Day: 6, Title: "Trash Compactor", Input: input.ModeRaw},
	}

	var text bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatText, true).Days(&text, days))
	assert.Contains(t, text.String(), "Secret Entrance")
	assert.Contains(t, text.String(), "raw")

	var js bytes.Buffer

	require.NoError(t, report.NewRenderer(report.FormatJSON, true).Days(&js, days))
	assert.JSONEq(t, `{"days":[
		{"day":1,"title":"Secret Entrance","input":"trimmed"},
		{"day":6,"title":"Trash Compactor","input":"raw"}]}`, js.String())
}

func TestRenderer_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := report.NewRenderer(report.Format("xml"), true).Results(&bytes.Buffer{}, nil)
	require.ErrorIs(t, err, report.ErrUnknownFormat)
}
