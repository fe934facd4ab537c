package btree

import (
	"fmt"

	"github.com/agatho/bottree/pkg/catalog"
)

// Severity classifies a validation issue. Errors indicate a structurally
// broken tree; warnings flag suspicious but loadable states.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single validation finding. NodeID is empty for
// document-level issues such as a missing root.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	NodeID   string   `json:"nodeId,omitempty"`
}

// HasErrors reports whether any issue in the list has error severity.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks a node collection against the structural and semantic
// rules of the model. It never fails: every rule is evaluated and all
// findings are returned as a list. Callers decide whether errors block
// saving; warnings never do.
func Validate(nodes []Node, rootID string) []Issue {
	var issues []Issue

	errf := func(nodeID, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityError, Message: fmt.Sprintf(format, args...), NodeID: nodeID})
	}
	warnf := func(nodeID, format string, args ...any) {
		issues = append(issues, Issue{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...), NodeID: nodeID})
	}

	// Root rules.
	var root *Node
	if rootID == "" {
		errf("", "document has no root set")
	} else if root = Find(nodes, rootID); root == nil {
		errf("", "rootId %q does not reference an existing node", rootID)
	} else if root.ParentID != "" {
		errf(rootID, "root must have no parent, but %q has parent %q", root.Name, root.ParentID)
	}

	// Duplicate IDs.
	seen := make(map[string]bool, len(nodes))
	for i := range nodes {
		if seen[nodes[i].ID] {
			errf(nodes[i].ID, "duplicate node ID %q", nodes[i].ID)
		}
		seen[nodes[i].ID] = true
	}

	// Per-node capacity and emptiness rules.
	for i := range nodes {
		n := &nodes[i]
		switch n.Category() {
		case CategoryLeaf:
			if len(n.Children) > 0 {
				errf(n.ID, "%s node %q should not have children", n.Type, n.Name)
			}
		case CategoryDecorator:
			if len(n.Children) > 1 {
				errf(n.ID, "decorator %q allows at most 1 child, has %d", n.Name, len(n.Children))
			}
			if len(n.Children) == 0 && !n.Disabled {
				warnf(n.ID, "decorator %q has no child", n.Name)
			}
		case CategoryComposite:
			if len(n.Children) == 0 && !n.Disabled {
				warnf(n.ID, "composite %q has no children", n.Name)
			}
		}
	}

	// Parent/child cross-reference consistency.
	for i := range nodes {
		n := &nodes[i]
		if n.ParentID != "" {
			parent := Find(nodes, n.ParentID)
			switch {
			case parent == nil:
				errf(n.ID, "mismatched parent reference: parent %q of %q does not exist", n.ParentID, n.Name)
			case !containsID(parent.Children, n.ID):
				errf(n.ID, "mismatched parent reference: %q is not listed as a child of %q", n.Name, parent.Name)
			}
		}
		for _, childID := range n.Children {
			child := Find(nodes, childID)
			switch {
			case child == nil:
				errf(n.ID, "mismatched parent reference: child %q of %q does not exist", childID, n.Name)
			case child.ParentID != n.ID:
				errf(childID, "mismatched parent reference: child %q does not point back to %q", child.Name, n.Name)
			}
		}
	}

	// Reachability from the root.
	if root != nil {
		reachable := map[string]bool{root.ID: true}
		for _, d := range DescendantIDs(nodes, root.ID) {
			reachable[d] = true
		}
		for i := range nodes {
			if !reachable[nodes[i].ID] {
				warnf(nodes[i].ID, "orphaned node %q is unreachable from the root", nodes[i].Name)
			}
		}
	}

	// Catalog-driven field requirements for action leaves.
	for i := range nodes {
		n := &nodes[i]
		if n.Type != TypeAction || n.Action == nil {
			continue
		}
		desc, ok := catalog.ActionByValue(n.Action.ActionType)
		if !ok {
			continue
		}
		if desc.RequiresSpellID && n.Action.SpellID == 0 {
			warnf(n.ID, "action %q has no spell ID specified", n.Name)
		}
		if desc.RequiresTarget && n.Action.TargetType == "" {
			warnf(n.ID, "action %q has no target type specified", n.Name)
		}
	}

	return issues
}

func containsID(ids []string, id string) bool {
	for _, c := range ids {
		if c == id {
			return true
		}
	}
	return false
}
