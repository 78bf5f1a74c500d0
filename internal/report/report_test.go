// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

func sampleReport() types.StepReport {
	return types.StepReport{
		Step:      3,
		Title:     "Introduction to web scraping",
		Objective: "Extract weather data",
		Sections: []types.Section{
			{
				ID:      "3.1",
				Title:   "Simple HTML parsing",
				Status:  types.StatusOK,
				Notes:   []string{"Page title: Today's Weather"},
				Columns: []string{"City", "Status"},
				Rows:    [][]string{{"Jakarta", "Sunny"}, {"Bandung", "Cloudy"}},
			},
			{
				ID:     "3.2",
				Title:  "Using CSS selectors",
				Status: types.StatusFailed,
				Error:  "no page available to parse",
			},
		},
		Learnings: []string{"CSS selectors allow flexible element targeting"},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleReport(), &buf)
	out := buf.String()

	assert.Contains(t, out, "STEP 3: INTRODUCTION TO WEB SCRAPING")
	assert.Contains(t, out, "3.1 Simple HTML parsing")
	assert.Contains(t, out, "  Page title: Today's Weather")
	assert.Contains(t, out, "Jakarta")
	assert.Contains(t, out, "CITY") // go-pretty upper-cases headers
	assert.Contains(t, out, "  error: no page available to parse")
	assert.Contains(t, out, "- CSS selectors allow flexible element targeting")
	assert.Contains(t, out, "1/2 sections succeeded (1 failed)")

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Jakarta") {
			assert.True(t, strings.HasPrefix(line, "  "), "table rows are indented: %q", line)
		}
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []types.StepReport{sampleReport()}, types.OutputJSON))

	var got []types.StepReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, types.StatusFailed, got[0].Sections[1].Status)
	assert.Equal(t, 1, got[0].Passed())
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []types.StepReport{sampleReport()}, types.OutputYAML))
	assert.Contains(t, buf.String(), "title: Introduction to web scraping")

	var got []types.StepReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, [][]string{{"Jakarta", "Sunny"}, {"Bandung", "Cloudy"}}, got[0].Sections[0].Rows)
}

func TestRender_DefaultIsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, []types.StepReport{sampleReport()}, ""))
	assert.Contains(t, buf.String(), "STEP 3")
}

func TestRender_UnknownFormat(t *testing.T) {
	err := Render(&bytes.Buffer{}, nil, "csv")
	assert.Error(t, err)
}
