// Package layout assigns 2D display positions to behavior-tree nodes.
//
// The algorithm runs two passes: a bottom-up pass computes each node's
// subtree width (a leaf or empty container counts 1 unit, a container
// sums its children), then a top-down depth-first pass places each node
// centered over its subtree's horizontal span. Positions are a pure
// function of tree shape, so identical trees always lay out identically
// regardless of prior positions.
package layout

import "github.com/agatho/bottree/pkg/btree"

// Config controls the spacing between laid-out nodes.
type Config struct {
	// HorizontalSpacing is the width in display units of one unit of
	// subtree width.
	HorizontalSpacing float64

	// VerticalSpacing is the distance between consecutive depths.
	VerticalSpacing float64
}

// DefaultConfig returns the spacing used when the caller does not
// provide its own.
func DefaultConfig() Config {
	return Config{HorizontalSpacing: 180, VerticalSpacing: 120}
}

// AutoLayout returns a new node collection with positions assigned to
// every node reachable from rootID. The root lands at y = startY;
// siblings are placed left to right in children order with
// non-overlapping subtree spans. Nodes not reachable from the root keep
// their existing positions. The input collection is never modified.
func AutoLayout(nodes []btree.Node, rootID string, cfg Config, startX, startY float64) []btree.Node {
	out := btree.CloneAll(nodes)
	if btree.Find(out, rootID) == nil {
		return out
	}
	if cfg.HorizontalSpacing <= 0 {
		cfg.HorizontalSpacing = DefaultConfig().HorizontalSpacing
	}
	if cfg.VerticalSpacing <= 0 {
		cfg.VerticalSpacing = DefaultConfig().VerticalSpacing
	}

	widths := make(map[string]float64)
	subtreeWidth(out, rootID, widths)

	place(out, rootID, 0, 0, startX, startY, cfg, widths, map[string]bool{})
	return out
}

// subtreeWidth computes the unit width of the subtree rooted at id.
// The memo doubles as a visited set so a corrupted cyclic collection
// cannot recurse forever.
func subtreeWidth(nodes []btree.Node, id string, memo map[string]float64) float64 {
	if w, ok := memo[id]; ok {
		return w
	}
	memo[id] = 1 // provisional, breaks cycles

	n := btree.Find(nodes, id)
	if n == nil || len(n.Children) == 0 {
		return 1
	}

	var sum float64
	for _, c := range n.Children {
		sum += subtreeWidth(nodes, c, memo)
	}
	if sum < 1 {
		sum = 1
	}
	memo[id] = sum
	return sum
}

// place assigns the position of id and recurses into its children,
// advancing a running horizontal offset by each child's subtree width.
func place(nodes []btree.Node, id string, depth int, offset, startX, startY float64, cfg Config, widths map[string]float64, placed map[string]bool) {
	if placed[id] {
		return
	}
	placed[id] = true

	n := btree.Find(nodes, id)
	if n == nil {
		return
	}

	w := widths[id]
	if w < 1 {
		w = 1
	}
	n.Position = btree.Position{
		X: startX + (offset+w/2)*cfg.HorizontalSpacing,
		Y: startY + float64(depth)*cfg.VerticalSpacing,
	}

	childOffset := offset
	for _, c := range n.Children {
		place(nodes, c, depth+1, childOffset, startX, startY, cfg, widths, placed)
		cw := widths[c]
		if cw < 1 {
			cw = 1
		}
		childOffset += cw
	}
}
