// Package document defines the persisted behavior-tree document and its
// versioned JSON codec. A document is the unit an external editor holds,
// mutates through the btree package, and saves through the codec.
package document

import (
	"time"

	"github.com/agatho/bottree/pkg/btree"
)

// CurrentVersion is the document format version written by this codec.
// Documents with an equal or older version decode as-is; documents with
// a newer version are rejected.
const CurrentVersion = 2

// DefaultName is used when a document is created without a name.
const DefaultName = "Untitled Behavior Tree"

// Document is the persisted unit: a flat node collection plus the
// metadata describing which bots the tree applies to.
type Document struct {
	Version    int          `json:"version"`
	Name       string       `json:"name"`
	Nodes      []btree.Node `json:"nodes"`
	RootID     string       `json:"rootId,omitempty"`
	Tags       []string     `json:"tags"`
	BotClass   string       `json:"botClass"`
	BotSpec    string       `json:"botSpec"`
	MinLevel   int          `json:"minLevel"`
	MaxLevel   int          `json:"maxLevel"`
	CreatedAt  time.Time    `json:"createdAt"`
	ModifiedAt time.Time    `json:"modifiedAt"`
	Author     string       `json:"author,omitempty"`
}

// New creates an empty document with fresh timestamps and the defaults
// for an unconstrained bot: any class, any spec, levels 1-90.
func New(name string) Document {
	if name == "" {
		name = DefaultName
	}
	now := time.Now().UTC()
	return Document{
		Version:    CurrentVersion,
		Name:       name,
		Nodes:      []btree.Node{},
		Tags:       []string{},
		BotClass:   "Any",
		BotSpec:    "Any",
		MinLevel:   1,
		MaxLevel:   90,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// Validate runs the structural validator over the document's tree.
func (d *Document) Validate() []btree.Issue {
	return btree.Validate(d.Nodes, d.RootID)
}

// Root returns the document's root node, or nil when RootID is unset or
// does not resolve.
func (d *Document) Root() *btree.Node {
	if d.RootID == "" {
		return nil
	}
	return btree.Find(d.Nodes, d.RootID)
}
