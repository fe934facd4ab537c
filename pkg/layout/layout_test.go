package layout

import (
	"reflect"
	"testing"

	"github.com/agatho/bottree/pkg/btree"
)

// grid uses unit spacing so expected coordinates stay readable.
var grid = Config{HorizontalSpacing: 100, VerticalSpacing: 100}

func leaf(id, parentID string) btree.Node {
	return btree.Node{ID: id, Type: btree.TypeAction, ParentID: parentID, Children: []string{}, Action: &btree.ActionParams{ActionType: "Wait"}}
}

func composite(id, parentID string, children ...string) btree.Node {
	return btree.Node{ID: id, Type: btree.TypeSequence, ParentID: parentID, Children: children, Composite: &btree.CompositeParams{}}
}

func positionOf(t *testing.T, nodes []btree.Node, id string) btree.Position {
	t.Helper()
	n := btree.Find(nodes, id)
	if n == nil {
		t.Fatalf("node %s missing from layout result", id)
	}
	return n.Position
}

func TestAutoLayout(t *testing.T) {
	nodes := []btree.Node{
		composite("root", "", "a", "b"),
		composite("a", "root", "c"),
		leaf("b", "root"),
		leaf("c", "a"),
	}

	out := AutoLayout(nodes, "root", grid, 0, 0)

	// Widths: c=1, a=1, b=1, root=2. Root centers over [0,2),
	// a over [0,1), b over [1,2), c inherits a's span.
	want := map[string]btree.Position{
		"root": {X: 100, Y: 0},
		"a":    {X: 50, Y: 100},
		"b":    {X: 150, Y: 100},
		"c":    {X: 50, Y: 200},
	}
	for id, p := range want {
		if got := positionOf(t, out, id); got != p {
			t.Errorf("%s at %+v, want %+v", id, got, p)
		}
	}

	// The input keeps its zero positions.
	for i := range nodes {
		if nodes[i].Position != (btree.Position{}) {
			t.Errorf("input node %s was positioned: %+v", nodes[i].ID, nodes[i].Position)
		}
	}
}

func TestAutoLayoutSiblingSpans(t *testing.T) {
	nodes := []btree.Node{
		composite("root", "", "l", "m", "r"),
		leaf("l", "root"),
		composite("m", "root", "m1", "m2"),
		leaf("r", "root"),
		leaf("m1", "m"),
		leaf("m2", "m"),
	}

	out := AutoLayout(nodes, "root", grid, 0, 0)

	// m is two units wide, pushing r past its span.
	want := map[string]btree.Position{
		"root": {X: 200, Y: 0},
		"l":    {X: 50, Y: 100},
		"m":    {X: 200, Y: 100},
		"r":    {X: 350, Y: 100},
		"m1":   {X: 150, Y: 200},
		"m2":   {X: 250, Y: 200},
	}
	for id, p := range want {
		if got := positionOf(t, out, id); got != p {
			t.Errorf("%s at %+v, want %+v", id, got, p)
		}
	}
}

func TestAutoLayoutStartOffset(t *testing.T) {
	nodes := []btree.Node{composite("root", "")}

	out := AutoLayout(nodes, "root", grid, 400, 60)

	if got := positionOf(t, out, "root"); got != (btree.Position{X: 450, Y: 60}) {
		t.Errorf("root at %+v, want {450 60}", got)
	}
}

func TestAutoLayoutSingleNode(t *testing.T) {
	nodes := []btree.Node{leaf("only", "")}

	out := AutoLayout(nodes, "only", grid, 0, 0)

	if got := positionOf(t, out, "only"); got != (btree.Position{X: 50, Y: 0}) {
		t.Errorf("single node at %+v, want {50 0}", got)
	}
}

func TestAutoLayoutUnknownRoot(t *testing.T) {
	nodes := []btree.Node{leaf("a", "")}
	nodes[0].Position = btree.Position{X: 7, Y: 9}

	out := AutoLayout(nodes, "missing", grid, 0, 0)

	if !reflect.DeepEqual(out, nodes) {
		t.Errorf("unknown root changed the collection: %+v", out)
	}
}

func TestAutoLayoutUnreachableKeepsPosition(t *testing.T) {
	nodes := []btree.Node{
		composite("root", ""),
		leaf("stray", ""),
	}
	nodes[1].Position = btree.Position{X: 7, Y: 9}

	out := AutoLayout(nodes, "root", grid, 0, 0)

	if got := positionOf(t, out, "stray"); got != (btree.Position{X: 7, Y: 9}) {
		t.Errorf("stray node moved to %+v", got)
	}
}

func TestAutoLayoutDeterministic(t *testing.T) {
	nodes := []btree.Node{
		composite("root", "", "a", "b"),
		leaf("a", "root"),
		leaf("b", "root"),
	}

	first := AutoLayout(nodes, "root", grid, 0, 0)
	// A second pass over already-positioned nodes must not drift.
	second := AutoLayout(first, "root", grid, 0, 0)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("layout drifted on re-run:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestAutoLayoutZeroSpacingFallsBack(t *testing.T) {
	nodes := []btree.Node{
		composite("root", "", "a"),
		leaf("a", "root"),
	}

	out := AutoLayout(nodes, "root", Config{}, 0, 0)

	def := DefaultConfig()
	if got := positionOf(t, out, "a"); got.Y != def.VerticalSpacing {
		t.Errorf("child Y = %v, want default vertical spacing %v", got.Y, def.VerticalSpacing)
	}
}
