package btree

import (
	"reflect"
	"testing"
)

func TestAddChild(t *testing.T) {
	t.Run("Append", func(t *testing.T) {
		nodes := testTree()
		child := Node{ID: "d", Type: TypeAction, Children: []string{}, Action: &ActionParams{ActionType: "Wait"}}

		out := AddChild(nodes, "root", child, -1)

		p := Find(out, "root")
		if !reflect.DeepEqual(p.Children, []string{"a", "b", "d"}) {
			t.Errorf("children = %v, want [a b d]", p.Children)
		}
		if got := Find(out, "d"); got == nil || got.ParentID != "root" {
			t.Errorf("child not attached: %v", got)
		}
		// Input untouched.
		if len(nodes) != 4 || len(Find(nodes, "root").Children) != 2 {
			t.Error("input collection was mutated")
		}
	})

	t.Run("AtIndex", func(t *testing.T) {
		child := Node{ID: "d", Type: TypeAction, Children: []string{}, Action: &ActionParams{}}
		out := AddChild(testTree(), "root", child, 0)
		if got := Find(out, "root").Children; !reflect.DeepEqual(got, []string{"d", "a", "b"}) {
			t.Errorf("children = %v, want [d a b]", got)
		}
	})

	t.Run("IndexOutOfRangeAppends", func(t *testing.T) {
		child := Node{ID: "d", Type: TypeAction, Children: []string{}, Action: &ActionParams{}}
		out := AddChild(testTree(), "root", child, 99)
		if got := Find(out, "root").Children; !reflect.DeepEqual(got, []string{"a", "b", "d"}) {
			t.Errorf("children = %v, want [a b d]", got)
		}
	})

	noops := []struct {
		name     string
		parentID string
		setup    func([]Node) []Node
	}{
		{"LeafParent", "b", nil},
		{"UnknownParent", "missing", nil},
		{"FullDecorator", "dec", func(nodes []Node) []Node {
			return append(nodes,
				Node{ID: "dec", Type: TypeInverter, Children: []string{"x"}, Decorator: &DecoratorParams{}},
				Node{ID: "x", Type: TypeAction, ParentID: "dec", Children: []string{}, Action: &ActionParams{}},
			)
		}},
	}

	for _, tt := range noops {
		t.Run("Noop"+tt.name, func(t *testing.T) {
			nodes := testTree()
			if tt.setup != nil {
				nodes = tt.setup(nodes)
			}
			child := Node{ID: "new", Type: TypeAction, Children: []string{}, Action: &ActionParams{}}

			out := AddChild(nodes, tt.parentID, child, -1)

			if !reflect.DeepEqual(out, nodes) {
				t.Errorf("no-op changed the collection:\ngot  %+v\nwant %+v", out, nodes)
			}
			if Find(out, "new") != nil {
				t.Error("child was added despite no-op")
			}
		})
	}
}

func TestAddChildToEmptyDecorator(t *testing.T) {
	nodes := append(testTree(),
		Node{ID: "dec", Type: TypeInverter, Children: []string{}, Decorator: &DecoratorParams{}})
	child := Node{ID: "x", Type: TypeAction, Children: []string{}, Action: &ActionParams{}}

	out := AddChild(nodes, "dec", child, -1)

	if got := Find(out, "dec").Children; !reflect.DeepEqual(got, []string{"x"}) {
		t.Errorf("decorator children = %v, want [x]", got)
	}
}

func TestRemove(t *testing.T) {
	t.Run("Cascade", func(t *testing.T) {
		out := Remove(testTree(), "a")

		for _, id := range []string{"a", "c"} {
			if Find(out, id) != nil {
				t.Errorf("%s still present after removal", id)
			}
		}
		if got := Find(out, "root").Children; !reflect.DeepEqual(got, []string{"b"}) {
			t.Errorf("root children = %v, want [b]", got)
		}
	})

	t.Run("Root", func(t *testing.T) {
		out := Remove(testTree(), "root")
		if len(out) != 0 {
			t.Errorf("removing the root left %d nodes", len(out))
		}
	})

	t.Run("UnknownIsNoop", func(t *testing.T) {
		nodes := testTree()
		out := Remove(nodes, "missing")
		if !reflect.DeepEqual(out, nodes) {
			t.Error("removing an unknown ID changed the collection")
		}
	})
}

func TestMove(t *testing.T) {
	t.Run("Reparent", func(t *testing.T) {
		out := Move(testTree(), "b", "a")

		if got := Find(out, "root").Children; !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("old parent children = %v, want [a]", got)
		}
		if got := Find(out, "a").Children; !reflect.DeepEqual(got, []string{"c", "b"}) {
			t.Errorf("new parent children = %v, want [c b]", got)
		}
		if got := Find(out, "b").ParentID; got != "a" {
			t.Errorf("moved node parent = %q, want a", got)
		}
	})

	noops := []struct {
		name      string
		id        string
		newParent string
	}{
		{"SelfTarget", "a", "a"},
		{"IntoOwnSubtree", "a", "c"},
		{"IntoOwnDeepSubtree", "root", "c"},
		{"UnknownNode", "missing", "root"},
		{"UnknownTarget", "b", "missing"},
		{"LeafTarget", "a", "b"},
	}

	for _, tt := range noops {
		t.Run("Noop"+tt.name, func(t *testing.T) {
			nodes := testTree()
			out := Move(nodes, tt.id, tt.newParent)
			if !reflect.DeepEqual(out, nodes) {
				t.Errorf("Move(%s, %s) changed the collection", tt.id, tt.newParent)
			}
		})
	}
}

func TestReorder(t *testing.T) {
	three := func() []Node {
		return []Node{
			{ID: "root", Type: TypeSelector, Children: []string{"a", "b", "c"}, Composite: &CompositeParams{}},
			{ID: "a", Type: TypeAction, ParentID: "root", Children: []string{}, Action: &ActionParams{}},
			{ID: "b", Type: TypeAction, ParentID: "root", Children: []string{}, Action: &ActionParams{}},
			{ID: "c", Type: TypeAction, ParentID: "root", Children: []string{}, Action: &ActionParams{}},
		}
	}

	tests := []struct {
		name       string
		from, to   int
		want       []string
		unchanged  bool
	}{
		{name: "FirstToLast", from: 0, to: 2, want: []string{"b", "c", "a"}},
		{name: "LastToFirst", from: 2, to: 0, want: []string{"c", "a", "b"}},
		{name: "AdjacentSwap", from: 0, to: 1, want: []string{"b", "a", "c"}},
		{name: "SamePosition", from: 1, to: 1, unchanged: true},
		{name: "FromOutOfRange", from: 3, to: 0, unchanged: true},
		{name: "ToOutOfRange", from: 0, to: 3, unchanged: true},
		{name: "NegativeIndex", from: -1, to: 1, unchanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes := three()
			out := Reorder(nodes, "root", tt.from, tt.to)

			if tt.unchanged {
				if !reflect.DeepEqual(out, nodes) {
					t.Errorf("Reorder(%d, %d) changed the collection", tt.from, tt.to)
				}
				return
			}
			if got := Find(out, "root").Children; !reflect.DeepEqual(got, tt.want) {
				t.Errorf("children = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("UnknownParent", func(t *testing.T) {
		nodes := three()
		if out := Reorder(nodes, "missing", 0, 1); !reflect.DeepEqual(out, nodes) {
			t.Error("Reorder with unknown parent changed the collection")
		}
	})
}
