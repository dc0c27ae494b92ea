package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/idilsaglam/notepad/internal/model"
	"github.com/idilsaglam/notepad/internal/store"
)

// JSON-backed dataset. Read-only: the dashboard never writes cards back.

type cardJSON struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text"`
	Date   string `json:"date"`
	Posted string `json:"posted,omitempty"`
}

type fileJSON struct {
	Cards []cardJSON   `json:"cards"`
	Tree  []model.Node `json:"tree"`
}

// parseDate accepts a bare day (local midnight) or RFC 3339.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// Load reads the dataset at path. An empty path yields the built-in dataset;
// a named file must exist. A file that omits "tree" keeps the built-in tree.
func Load(path string) (model.Dataset, error) {
	if path == "" {
		return store.Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("read file: %w", err)
	}
	return Decode(b)
}

// Decode parses and validates a dataset document.
func Decode(b []byte) (model.Dataset, error) {
	var f fileJSON
	if err := json.Unmarshal(b, &f); err != nil {
		return model.Dataset{}, fmt.Errorf("json unmarshal: %w", err)
	}
	ds := model.Dataset{Tree: f.Tree}
	if ds.Tree == nil {
		ds.Tree = store.DefaultTree()
	}
	for _, c := range f.Cards {
		d, err := parseDate(c.Date)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("card %d: bad date %q: %w", c.ID, c.Date, err)
		}
		ds.Cards = append(ds.Cards, model.Item{ID: c.ID, Name: c.Name, Text: c.Text, Date: d, Posted: c.Posted})
	}
	if err := ds.Validate(); err != nil {
		return model.Dataset{}, fmt.Errorf("validate: %w", err)
	}
	return ds, nil
}
