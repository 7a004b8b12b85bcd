// Package recipe loads the recipe dataset once at startup and answers
// label lookups from memory for the process lifetime.
package recipe

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// NotFoundText is the placeholder shown when no recipe matches a label.
// A miss is a normal outcome, not an error.
const NotFoundText = "Recipe not found."

// entry is one row of the dataset.
type entry struct {
	foodItem string // trimmed Food_Item column
	recipe   string // free-text Recipe column
}

// Table is the in-memory, read-only recipe dataset.
type Table struct {
	entries []entry
}

// LoadCSV reads the dataset file.  The source CSV is ISO-8859-1 encoded,
// so every byte is decoded through the Latin-1 charmap before parsing.
// Required columns are Food_Item and Recipe; their positions are taken
// from the header row.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(charmap.ISO8859_1.NewDecoder().Reader(f))
	r.FieldsPerRecord = -1 // ragged rows exist in the dataset; skip them below

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse recipe csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("recipe csv %s is empty", path)
	}

	foodCol, recipeCol := -1, -1
	for i, h := range records[0] {
		switch strings.TrimSpace(h) {
		case "Food_Item":
			foodCol = i
		case "Recipe":
			recipeCol = i
		}
	}
	if foodCol < 0 || recipeCol < 0 {
		return nil, fmt.Errorf("recipe csv %s: missing Food_Item/Recipe columns", path)
	}

	t := &Table{}
	for _, rec := range records[1:] {
		if len(rec) <= foodCol || len(rec) <= recipeCol {
			continue
		}
		item := strings.TrimSpace(rec[foodCol])
		if item == "" {
			continue
		}
		t.entries = append(t.entries, entry{foodItem: item, recipe: rec[recipeCol]})
	}
	return t, nil
}

// Lookup returns the recipe whose Food_Item contains the label,
// case-insensitively, matching the first row in dataset order.  A miss
// returns the NotFoundText placeholder.
func (t *Table) Lookup(label string) string {
	needle := strings.ToLower(strings.TrimSpace(label))
	if needle == "" {
		return NotFoundText
	}
	for _, e := range t.entries {
		if strings.Contains(strings.ToLower(e.foodItem), needle) {
			return e.recipe
		}
	}
	return NotFoundText
}

// Len reports how many rows were loaded; used for startup logging.
func (t *Table) Len() int { return len(t.entries) }
