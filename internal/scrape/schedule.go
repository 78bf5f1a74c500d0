// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scrape

import (
	"io"

	"github.com/PuerkitoBio/goquery"
)

// Trip is one row of a train schedule.
type Trip struct {
	Train     string `json:"train" yaml:"train"`
	Departure string `json:"departure" yaml:"departure"`
	Arrival   string `json:"arrival" yaml:"arrival"`
	From      string `json:"from" yaml:"from"`
	To        string `json:"to" yaml:"to"`
}

// scheduleColumns is the number of cells a schedule row must carry.
const scheduleColumns = 5

// ParseSchedule reads the rows of table.schedule. Header rows (th cells) and
// rows with fewer than five cells are skipped. A page without a schedule
// table yields no trips and no error.
func ParseSchedule(r io.Reader) ([]Trip, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}

	var trips []Trip
	doc.Find("table.schedule tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < scheduleColumns {
			return
		}
		cell := func(i int) string { return text(cells.Eq(i)) }
		trips = append(trips, Trip{
			Train:     cell(0),
			Departure: cell(1),
			Arrival:   cell(2),
			From:      cell(3),
			To:        cell(4),
		})
	})
	return trips, nil
}
