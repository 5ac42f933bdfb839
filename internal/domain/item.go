package domain

import (
	"strings"
	"time"
)

// Item is one entry in the managed list
type Item struct {
	ID          string    // Opaque unique identifier, fixed at creation
	Title       string    // Trimmed, never empty once stored
	Subtitle    string    // Trimmed, never empty once stored
	DateCreated time.Time // Fixed at creation; edits never touch it
}

// Field names used for per-field validation messages
const (
	FieldTitle    = "title"
	FieldSubtitle = "subtitle"
)

// Validation messages shown next to the offending form field
const (
	MsgTitleRequired    = "Title is required"
	MsgSubtitleRequired = "Subtitle is required"
)

// Draft is the title/subtitle payload submitted from the item form
type Draft struct {
	Title    string
	Subtitle string
}

// Normalize returns a copy with surrounding whitespace removed
func (d Draft) Normalize() Draft {
	return Draft{
		Title:    strings.TrimSpace(d.Title),
		Subtitle: strings.TrimSpace(d.Subtitle),
	}
}

// Validate returns field -> message for every field that is empty after trimming.
// A nil map means the draft is valid.
func (d Draft) Validate() map[string]string {
	n := d.Normalize()
	var errs map[string]string
	if n.Title == "" {
		errs = map[string]string{FieldTitle: MsgTitleRequired}
	}
	if n.Subtitle == "" {
		if errs == nil {
			errs = make(map[string]string, 1)
		}
		errs[FieldSubtitle] = MsgSubtitleRequired
	}
	return errs
}

// Apply replaces the editable fields and keeps ID and DateCreated
func (i Item) Apply(d Draft) Item {
	n := d.Normalize()
	i.Title = n.Title
	i.Subtitle = n.Subtitle
	return i
}
