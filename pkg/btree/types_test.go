package btree

import (
	"reflect"
	"testing"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		nodeType NodeType
		want     Category
	}{
		{TypeSequence, CategoryComposite},
		{TypeSelector, CategoryComposite},
		{TypeParallel, CategoryComposite},
		{TypeInverter, CategoryDecorator},
		{TypeRepeater, CategoryDecorator},
		{TypeSucceeder, CategoryDecorator},
		{TypeUntilFail, CategoryDecorator},
		{TypeCooldown, CategoryDecorator},
		{TypeConditionGuard, CategoryDecorator},
		{TypeAction, CategoryLeaf},
		{TypeCondition, CategoryLeaf},
	}

	for _, tt := range tests {
		t.Run(string(tt.nodeType), func(t *testing.T) {
			if got := CategoryOf(tt.nodeType); got != tt.want {
				t.Errorf("CategoryOf(%s) = %s, want %s", tt.nodeType, got, tt.want)
			}
		})
	}
}

func TestChildCapacity(t *testing.T) {
	for _, nt := range Types() {
		max := MaxChildren(nt)
		can := CanHaveChildren(nt)

		switch CategoryOf(nt) {
		case CategoryLeaf:
			if max != 0 || can {
				t.Errorf("%s: leaf must have max 0 children, got max=%d can=%v", nt, max, can)
			}
		case CategoryDecorator:
			if max != 1 || !can {
				t.Errorf("%s: decorator must have max 1 child, got max=%d can=%v", nt, max, can)
			}
		case CategoryComposite:
			if max != -1 || !can {
				t.Errorf("%s: composite must be unbounded, got max=%d can=%v", nt, max, can)
			}
		}
	}
}

func TestTypesCoversAllVariants(t *testing.T) {
	if got := len(Types()); got != 11 {
		t.Fatalf("Types() has %d entries, want 11", got)
	}

	seen := map[NodeType]bool{}
	for _, nt := range Types() {
		if seen[nt] {
			t.Errorf("duplicate type %s", nt)
		}
		seen[nt] = true
		if DefaultName(nt) == "" {
			t.Errorf("%s has no default name", nt)
		}
		if DefaultDescription(nt) == "" {
			t.Errorf("%s has no default description", nt)
		}
	}
}

func TestCloneIndependence(t *testing.T) {
	n := Node{
		ID:       "a",
		Type:     TypeParallel,
		Children: []string{"b", "c"},
		Composite: &CompositeParams{
			SuccessPolicy: "require_all",
			FailurePolicy: "require_one",
		},
	}

	c := n.Clone()
	c.Children[0] = "x"
	c.Composite.SuccessPolicy = "require_one"

	if n.Children[0] != "b" {
		t.Errorf("clone shares children slice: original mutated to %v", n.Children)
	}
	if n.Composite.SuccessPolicy != "require_all" {
		t.Errorf("clone shares composite params: original mutated to %+v", n.Composite)
	}
}

func TestCloneAll(t *testing.T) {
	nodes := []Node{
		{ID: "a", Type: TypeSequence, Children: []string{"b"}, Composite: &CompositeParams{}},
		{ID: "b", Type: TypeAction, ParentID: "a", Children: []string{}, Action: &ActionParams{ActionType: "Wait"}},
	}

	out := CloneAll(nodes)
	if !reflect.DeepEqual(out, nodes) {
		t.Fatalf("CloneAll changed content:\ngot  %+v\nwant %+v", out, nodes)
	}

	out[1].Action.ActionType = "Flee"
	if nodes[1].Action.ActionType != "Wait" {
		t.Error("CloneAll shares parameter bags with the input")
	}
}
