// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders step reports as console tables, JSON, or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/scrape-lab/pkg/types"
)

// Render writes reports to w in the requested format. An empty format means
// table.
func Render(w io.Writer, reports []types.StepReport, format types.OutputFormat) error {
	switch format {
	case "", types.OutputTable:
		for _, r := range reports {
			FormatTable(r, w)
		}
		return nil
	case types.OutputJSON:
		return FormatJSON(reports, w)
	case types.OutputYAML:
		return FormatYAML(reports, w)
	default:
		return fmt.Errorf("unknown output format %q (want table, json, or yaml)", format)
	}
}

// FormatTable writes one step as human-readable text with a table per
// section.
func FormatTable(r types.StepReport, w io.Writer) {
	fmt.Fprintf(w, "\nSTEP %d: %s\n", r.Step, strings.ToUpper(r.Title))
	fmt.Fprintln(w, strings.Repeat("-", 40))
	if r.Objective != "" {
		fmt.Fprintf(w, "Objective: %s\n", r.Objective)
	}

	for _, s := range r.Sections {
		fmt.Fprintf(w, "\n%s %s\n", s.ID, s.Title)
		if s.Status == types.StatusFailed {
			fmt.Fprintf(w, "  error: %s\n", s.Error)
		}
		for _, n := range s.Notes {
			fmt.Fprintf(w, "  %s\n", n)
		}
		if len(s.Columns) > 0 && len(s.Rows) > 0 {
			fmt.Fprintln(w, indent(renderTable(s), "  "))
		}
	}

	if len(r.Learnings) > 0 {
		fmt.Fprintln(w, "\nKey learning points:")
		for _, l := range r.Learnings {
			fmt.Fprintf(w, "- %s\n", l)
		}
	}

	fmt.Fprintf(w, "\n%d/%d sections succeeded", r.Passed(), len(r.Sections))
	if f := r.Failed(); f > 0 {
		fmt.Fprintf(w, " (%d failed)", f)
	}
	fmt.Fprintln(w)
}

// FormatJSON writes reports as indented JSON.
func FormatJSON(reports []types.StepReport, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(reports)
}

// FormatYAML writes reports as a YAML sequence.
func FormatYAML(reports []types.StepReport, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

func renderTable(s types.Section) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)

	header := make(table.Row, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, r := range s.Rows {
		row := make(table.Row, len(r))
		for i, c := range r {
			row[i] = c
		}
		t.AppendRow(row)
	}
	return t.Render()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
