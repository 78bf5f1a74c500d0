// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for scrape-lab: run
// configuration and the structured step report.
package types

// SectionStatus records whether a report section produced data.
type SectionStatus string

const (
	StatusOK     SectionStatus = "ok"
	StatusFailed SectionStatus = "failed"
)

// Section is one numbered part of a step (e.g. "2.4 BMKG earthquakes").
type Section struct {
	// ID is the section number within the step (e.g. "2.4").
	ID string `json:"id" yaml:"id"`

	// Title is the human-readable heading.
	Title string `json:"title" yaml:"title"`

	// Status is ok when the section produced data.
	Status SectionStatus `json:"status" yaml:"status"`

	// Error holds the failure message when Status is failed.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// Columns and Rows hold the tabular data the section printed.
	Columns []string   `json:"columns,omitempty" yaml:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`

	// Notes are free-form lines (e.g. "Status Code: 200").
	Notes []string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// StepReport is the structured outcome of one step.
type StepReport struct {
	Step      int       `json:"step" yaml:"step"`
	Title     string    `json:"title" yaml:"title"`
	Objective string    `json:"objective" yaml:"objective"`
	Sections  []Section `json:"sections" yaml:"sections"`
	Learnings []string  `json:"learnings,omitempty" yaml:"learnings,omitempty"`
}

// Passed counts sections that produced data.
func (r StepReport) Passed() int {
	n := 0
	for _, s := range r.Sections {
		if s.Status == StatusOK {
			n++
		}
	}
	return n
}

// Failed counts sections that failed.
func (r StepReport) Failed() int {
	return len(r.Sections) - r.Passed()
}
