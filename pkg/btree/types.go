// Package btree implements the behavior-tree node arena used by the
// document model. Nodes live in a flat collection and reference each
// other by string ID instead of pointers, which keeps every mutation a
// plain value transformation (collection in, collection out) and makes
// snapshotting trivial for an external undo/redo history.
package btree

// NodeType identifies one of the behavior-tree node variants.
type NodeType string

// Composite node types evaluate multiple children in order.
const (
	TypeSequence NodeType = "sequence"
	TypeSelector NodeType = "selector"
	TypeParallel NodeType = "parallel"
)

// Decorator node types wrap exactly one child.
const (
	TypeInverter       NodeType = "inverter"
	TypeRepeater       NodeType = "repeater"
	TypeSucceeder      NodeType = "succeeder"
	TypeUntilFail      NodeType = "until_fail"
	TypeCooldown       NodeType = "cooldown"
	TypeConditionGuard NodeType = "condition_guard"
)

// Leaf node types perform a concrete action or test a condition.
const (
	TypeAction    NodeType = "action"
	TypeCondition NodeType = "condition"
)

// Category partitions node types by their child-capacity rules.
type Category string

const (
	CategoryComposite Category = "composite"
	CategoryDecorator Category = "decorator"
	CategoryLeaf      Category = "leaf"
)

// Types lists all node types in display order: composites, decorators, leaves.
func Types() []NodeType {
	return []NodeType{
		TypeSequence, TypeSelector, TypeParallel,
		TypeInverter, TypeRepeater, TypeSucceeder,
		TypeUntilFail, TypeCooldown, TypeConditionGuard,
		TypeAction, TypeCondition,
	}
}

// CategoryOf returns the category for a node type. The category is always
// derived from the type and never stored independently.
func CategoryOf(t NodeType) Category {
	switch t {
	case TypeSequence, TypeSelector, TypeParallel:
		return CategoryComposite
	case TypeInverter, TypeRepeater, TypeSucceeder, TypeUntilFail, TypeCooldown, TypeConditionGuard:
		return CategoryDecorator
	default:
		return CategoryLeaf
	}
}

// CanHaveChildren reports whether nodes of type t may have any children.
func CanHaveChildren(t NodeType) bool {
	return CategoryOf(t) != CategoryLeaf
}

// MaxChildren returns the child capacity for a node type:
// 0 for leaves, 1 for decorators, and -1 (unbounded) for composites.
func MaxChildren(t NodeType) int {
	switch CategoryOf(t) {
	case CategoryLeaf:
		return 0
	case CategoryDecorator:
		return 1
	default:
		return -1
	}
}

var defaultNames = map[NodeType]string{
	TypeSequence:       "Sequence",
	TypeSelector:       "Selector",
	TypeParallel:       "Parallel",
	TypeInverter:       "Inverter",
	TypeRepeater:       "Repeater",
	TypeSucceeder:      "Succeeder",
	TypeUntilFail:      "Until Fail",
	TypeCooldown:       "Cooldown",
	TypeConditionGuard: "Condition Guard",
	TypeAction:         "Action",
	TypeCondition:      "Condition",
}

var defaultDescriptions = map[NodeType]string{
	TypeSequence:       "Runs children in order, fails on the first failure",
	TypeSelector:       "Runs children in order, succeeds on the first success",
	TypeParallel:       "Runs all children at once, combining results by policy",
	TypeInverter:       "Inverts the result of its child",
	TypeRepeater:       "Repeats its child a fixed number of times",
	TypeSucceeder:      "Always reports success regardless of its child",
	TypeUntilFail:      "Repeats its child until it fails",
	TypeCooldown:       "Blocks re-entry into its child for a cooldown period",
	TypeConditionGuard: "Runs its child only while a condition holds",
	TypeAction:         "Performs a concrete bot action",
	TypeCondition:      "Tests a condition against game state",
}

// DefaultName returns the display name used when a node is created
// without an explicit name.
func DefaultName(t NodeType) string { return defaultNames[t] }

// DefaultDescription returns the description used when a node is created
// without an explicit description.
func DefaultDescription(t NodeType) string { return defaultDescriptions[t] }

// Position is a 2D display coordinate. Positions are written only by the
// layout engine; the model itself never interprets them.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// CompositeParams configures composite nodes. The policies are only
// meaningful for parallel nodes.
type CompositeParams struct {
	SuccessPolicy string `json:"successPolicy,omitempty"`
	FailurePolicy string `json:"failurePolicy,omitempty"`
}

// DecoratorParams configures decorator nodes. Each field applies to a
// single decorator type and is zero for the others.
type DecoratorParams struct {
	RepeatCount    int    `json:"repeatCount,omitempty"`
	CooldownMs     int    `json:"cooldownMs,omitempty"`
	GuardCondition string `json:"guardCondition,omitempty"`
}

// ActionParams configures action leaves. SpellID is optional; whether an
// action type requires one is described by the catalog.
type ActionParams struct {
	ActionType string `json:"actionType"`
	TargetType string `json:"targetType,omitempty"`
	Priority   int    `json:"priority,omitempty"`
	SpellID    int    `json:"spellId,omitempty"`
}

// ConditionParams configures condition leaves.
type ConditionParams struct {
	ConditionType string `json:"conditionType"`
	Operator      string `json:"operator,omitempty"`
	Value         string `json:"value,omitempty"`
	CheckTarget   string `json:"checkTarget,omitempty"`
}

// Node is one entry in the flat node collection. Exactly one of the
// parameter bags is populated, matching the node's category. Parent and
// child relationships are string-ID references into the same collection.
type Node struct {
	ID          string   `json:"id"`
	Type        NodeType `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Children    []string `json:"children"`
	ParentID    string   `json:"parentId,omitempty"`
	Collapsed   bool     `json:"collapsed,omitempty"`
	Disabled    bool     `json:"disabled,omitempty"`
	Position    Position `json:"position"`

	Composite *CompositeParams `json:"compositeParams,omitempty"`
	Decorator *DecoratorParams `json:"decoratorParams,omitempty"`
	Action    *ActionParams    `json:"actionParams,omitempty"`
	Condition *ConditionParams `json:"conditionParams,omitempty"`
}

// Category returns the node's derived category.
func (n *Node) Category() Category { return CategoryOf(n.Type) }

// IsRoot reports whether the node has no parent reference.
func (n *Node) IsRoot() bool { return n.ParentID == "" }

// Clone returns a deep copy of the node. The children slice and the
// populated parameter bag are copied, so mutating the clone never
// affects the original.
func (n Node) Clone() Node {
	c := n
	if n.Children != nil {
		c.Children = make([]string, len(n.Children))
		copy(c.Children, n.Children)
	}
	if n.Composite != nil {
		p := *n.Composite
		c.Composite = &p
	}
	if n.Decorator != nil {
		p := *n.Decorator
		c.Decorator = &p
	}
	if n.Action != nil {
		p := *n.Action
		c.Action = &p
	}
	if n.Condition != nil {
		p := *n.Condition
		c.Condition = &p
	}
	return c
}

// CloneAll returns a deep copy of a node collection.
func CloneAll(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}
	return out
}
