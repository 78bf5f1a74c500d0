//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Lesson groups the targets that run one step of the course.
type Lesson mg.Namespace

// Basics runs step 1: basic HTTP requests.
func (Lesson) Basics() error { return lesson("basics") }

// APIs runs step 2: JSON and XML APIs.
func (Lesson) APIs() error { return lesson("apis") }

// Scrape runs step 3: HTML parsing with CSS selectors.
func (Lesson) Scrape() error { return lesson("scrape") }

// Advanced runs step 4: headers, the rate-limited fetcher, and tables.
func (Lesson) Advanced() error { return lesson("advanced") }

// All runs every step in order.
func (Lesson) All() error { return lesson("all") }

func lesson(name string) error {
	mg.Deps(Build)
	return sh.RunV(binPath, name)
}
