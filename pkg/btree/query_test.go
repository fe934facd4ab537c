package btree

import (
	"reflect"
	"testing"
)

// testTree builds a small consistent tree:
//
//	root (sequence)
//	├── a (selector)
//	│   └── c (action)
//	└── b (action)
func testTree() []Node {
	return []Node{
		{ID: "root", Type: TypeSequence, Name: "Root", Children: []string{"a", "b"}, Composite: &CompositeParams{}},
		{ID: "a", Type: TypeSelector, Name: "A", ParentID: "root", Children: []string{"c"}, Composite: &CompositeParams{}},
		{ID: "b", Type: TypeAction, Name: "B", ParentID: "root", Children: []string{}, Action: &ActionParams{ActionType: "Wait"}},
		{ID: "c", Type: TypeAction, Name: "C", ParentID: "a", Children: []string{}, Action: &ActionParams{ActionType: "Flee"}},
	}
}

func TestFind(t *testing.T) {
	nodes := testTree()

	if n := Find(nodes, "a"); n == nil || n.ID != "a" {
		t.Errorf("Find(a) = %v, want node a", n)
	}
	if n := Find(nodes, "missing"); n != nil {
		t.Errorf("Find(missing) = %v, want nil", n)
	}
	if n := Find(nil, "a"); n != nil {
		t.Errorf("Find on nil collection = %v, want nil", n)
	}
}

func TestRoot(t *testing.T) {
	nodes := testTree()

	if r := Root(nodes); r == nil || r.ID != "root" {
		t.Errorf("Root() = %v, want root", r)
	}

	// All nodes parented: no root.
	nodes[0].ParentID = "b"
	if r := Root(nodes); r != nil {
		t.Errorf("Root() = %v, want nil", r)
	}
}

func TestDescendantIDs(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want []string
	}{
		{"Root", "root", []string{"a", "b", "c"}},
		{"Inner", "a", []string{"c"}},
		{"Leaf", "c", []string{}},
		{"Unknown", "nope", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DescendantIDs(testTree(), tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DescendantIDs(%s) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestDescendantIDsTerminatesOnCycle(t *testing.T) {
	// Corrupted collection: a and b list each other.
	nodes := []Node{
		{ID: "a", Type: TypeSequence, Children: []string{"b"}, Composite: &CompositeParams{}},
		{ID: "b", Type: TypeSequence, ParentID: "a", Children: []string{"a"}, Composite: &CompositeParams{}},
	}

	got := DescendantIDs(nodes, "a")
	if !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("DescendantIDs on cyclic collection = %v, want [b]", got)
	}
}
