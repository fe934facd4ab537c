package btree

// Find returns a pointer to the node with the given ID, or nil if no
// such node exists. The pointer aliases the provided slice and must be
// treated as read-only; mutations go through the mutator functions.
func Find(nodes []Node, id string) *Node {
	for i := range nodes {
		if nodes[i].ID == id {
			return &nodes[i]
		}
	}
	return nil
}

// Root returns the first node with no parent reference, or nil if every
// node has a parent. Multiple parentless nodes indicate an inconsistent
// collection; reporting that is the validator's job, not the query's.
func Root(nodes []Node) *Node {
	for i := range nodes {
		if nodes[i].ParentID == "" {
			return &nodes[i]
		}
	}
	return nil
}

// DescendantIDs returns the IDs of all transitive children of the given
// node, excluding the node itself. The result is empty for leaves and
// for unknown IDs. Traversal is breadth-first in children order and keeps
// a visited set so a corrupted collection with a cycle still terminates.
func DescendantIDs(nodes []Node, id string) []string {
	start := Find(nodes, id)
	if start == nil {
		return []string{}
	}

	out := []string{}
	visited := map[string]bool{id: true}
	stack := make([]string, len(start.Children))
	copy(stack, start.Children)

	for len(stack) > 0 {
		next := stack[0]
		stack = stack[1:]
		if visited[next] {
			continue
		}
		visited[next] = true

		n := Find(nodes, next)
		if n == nil {
			continue
		}
		out = append(out, next)
		stack = append(stack, n.Children...)
	}
	return out
}
