package btree

import "slices"

// Mutator functions are pure: they take a node collection and return a
// new one, leaving the input untouched. Invalid requests are no-ops that
// return the input collection as-is, so callers that need to know
// whether an operation applied compare the result against the input.

// AddChild attaches child under parentID at the given index within the
// parent's children (clamped; pass a negative index to append) and adds
// it to the collection. The operation is a no-op when the parent does
// not exist, is a leaf, or is a decorator that already has a child.
func AddChild(nodes []Node, parentID string, child Node, at int) []Node {
	parent := Find(nodes, parentID)
	if parent == nil || !canAccept(parent) {
		return nodes
	}

	out := CloneAll(nodes)
	p := Find(out, parentID)

	if at < 0 || at > len(p.Children) {
		at = len(p.Children)
	}
	p.Children = slices.Insert(p.Children, at, child.ID)

	c := child.Clone()
	c.ParentID = parentID
	return append(out, c)
}

// Remove deletes the node with the given ID together with all of its
// descendants, and drops the ID from its former parent's children list.
// Removing an unknown ID is a no-op.
func Remove(nodes []Node, id string) []Node {
	target := Find(nodes, id)
	if target == nil {
		return nodes
	}

	doomed := map[string]bool{id: true}
	for _, d := range DescendantIDs(nodes, id) {
		doomed[d] = true
	}

	out := make([]Node, 0, len(nodes)-len(doomed))
	for i := range nodes {
		if doomed[nodes[i].ID] {
			continue
		}
		n := nodes[i].Clone()
		if n.ID == target.ParentID {
			n.Children = slices.DeleteFunc(n.Children, func(c string) bool { return c == id })
		}
		out = append(out, n)
	}
	return out
}

// Move reparents a node under newParentID, appending it to the new
// parent's children. The operation is a no-op when either node is
// unknown, when the target equals the node or lies within its own
// subtree (cycle prevention), or when the target cannot accept a child.
func Move(nodes []Node, id, newParentID string) []Node {
	if id == newParentID {
		return nodes
	}
	node := Find(nodes, id)
	target := Find(nodes, newParentID)
	if node == nil || target == nil || !canAccept(target) {
		return nodes
	}
	if slices.Contains(DescendantIDs(nodes, id), newParentID) {
		return nodes
	}

	out := CloneAll(nodes)
	if old := Find(out, node.ParentID); old != nil {
		old.Children = slices.DeleteFunc(old.Children, func(c string) bool { return c == id })
	}
	tgt := Find(out, newParentID)
	tgt.Children = append(tgt.Children, id)
	Find(out, id).ParentID = newParentID
	return out
}

// Reorder moves the child at fromIndex within parentID's children to
// toIndex using splice semantics: the ID is removed first, then
// re-inserted at the target position. Out-of-range indices and unknown
// parents are no-ops.
func Reorder(nodes []Node, parentID string, fromIndex, toIndex int) []Node {
	parent := Find(nodes, parentID)
	if parent == nil {
		return nodes
	}
	n := len(parent.Children)
	if fromIndex < 0 || fromIndex >= n || toIndex < 0 || toIndex >= n {
		return nodes
	}
	if fromIndex == toIndex {
		return nodes
	}

	out := CloneAll(nodes)
	p := Find(out, parentID)
	id := p.Children[fromIndex]
	p.Children = slices.Delete(p.Children, fromIndex, fromIndex+1)
	p.Children = slices.Insert(p.Children, toIndex, id)
	return out
}

// canAccept reports whether a node has capacity for one more child.
func canAccept(n *Node) bool {
	max := MaxChildren(n.Type)
	return max < 0 || len(n.Children) < max
}
