package model

import (
	"errors"
	"time"
)

var (
	ErrDuplicateID = errors.New("duplicate card id")
	ErrEmptyName   = errors.New("card name is empty")
)

// Item is a single dated card on the dashboard.
// Values are never mutated once built; views derive from copies.
type Item struct {
	ID     int       `json:"id"`
	Name   string    `json:"name" validate:"required"`
	Text   string    `json:"text"`
	Date   time.Time `json:"date"`
	Posted string    `json:"posted,omitempty"` // display label, e.g. "2h ago"
}

// Validate rejects empty names and duplicate ids.
func Validate(items []Item) error {
	return Dataset{Cards: items}.Validate()
}

// Find returns the card with the given id.
func Find(items []Item, id int) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Excerpt returns the first n characters of the text followed by "...".
// The ellipsis is always appended, even for short texts.
func (it Item) Excerpt(n int) string {
	r := []rune(it.Text)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + "..."
}
