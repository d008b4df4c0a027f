// Package enpass models the Enpass JSON export format and loads it into
// typed records. The export is read once and never mutated afterwards.
package enpass

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Folder is an Enpass folder. Items reference folders by UUID; the title is
// what ends up as a 1Password tag.
type Folder struct {
	UUID  uuid.UUID `json:"uuid"`
	Title string    `json:"title"`
}

// Field is a single field of an Enpass item. Enpass encodes booleans as 0/1
// integers, so the flags stay numeric here and are interpreted by the mappers.
type Field struct {
	UID       int64  `json:"uid"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Order     int    `json:"order"`
	Sensitive int    `json:"sensitive"`
	Deleted   int    `json:"deleted"`
}

// Item is one Enpass entry as it appears in the export.
type Item struct {
	UUID       uuid.UUID   `json:"uuid"`
	Title      string      `json:"title"`
	Category   string      `json:"category"`
	Folders    []uuid.UUID `json:"folders,omitempty"`
	Fields     []Field     `json:"fields,omitempty"`
	Note       string      `json:"note,omitempty"`
	Trashed    int         `json:"trashed"`
	Archived   int         `json:"archived"`
	AutoSubmit int         `json:"auto_submit"`
}

// Export is the top-level structure of an Enpass JSON export.
type Export struct {
	Folders []Folder `json:"folders"`
	Items   []Item   `json:"items"`
}

// FolderTitles returns a lookup from folder UUID to folder title.
func (e *Export) FolderTitles() map[uuid.UUID]string {
	titles := make(map[uuid.UUID]string, len(e.Folders))
	for _, folder := range e.Folders {
		titles[folder.UUID] = folder.Title
	}
	return titles
}

// Load parses an Enpass JSON export. An export that cannot be decoded or that
// contains no items at all is rejected; an empty export almost always means
// the wrong file was passed.
func Load(r io.Reader) (*Export, error) {
	var export Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("unable to load the given Enpass export: %w", err)
	}

	if len(export.Items) == 0 {
		return nil, fmt.Errorf("unable to load the given Enpass export: no items found")
	}

	return &export, nil
}
