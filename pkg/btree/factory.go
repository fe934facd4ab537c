package btree

import "strconv"

// idPrefix is the fixed prefix for generated node IDs.
const idPrefix = "node-"

// idCounter backs GenerateID. It is process-local and not safe for
// concurrent use; the model is single-threaded by design.
var idCounter uint64

// GenerateID returns a fresh node ID of the form "node-N". IDs are
// distinct across the process lifetime as long as the counter is not
// reset.
func GenerateID() string {
	idCounter++
	return idPrefix + strconv.FormatUint(idCounter, 10)
}

// ResetIDCounter restores the ID counter to its initial state so tests
// can produce deterministic IDs. Resetting while previously generated
// IDs are still referenced by live nodes risks collisions, so production
// editing flows must never call this.
func ResetIDCounter() {
	idCounter = 0
}

// Option customizes a node created by New.
type Option func(*Node)

// WithName overrides the type-derived default name.
func WithName(name string) Option {
	return func(n *Node) { n.Name = name }
}

// WithDescription overrides the type-derived default description.
func WithDescription(desc string) Option {
	return func(n *Node) { n.Description = desc }
}

// WithDisabled marks the node disabled, which suppresses empty-container
// validation warnings.
func WithDisabled() Option {
	return func(n *Node) { n.Disabled = true }
}

// WithCollapsed marks the node collapsed for display purposes.
func WithCollapsed() Option {
	return func(n *Node) { n.Collapsed = true }
}

// WithComposite adjusts the composite parameter bag. The option is
// ignored for non-composite nodes.
func WithComposite(f func(*CompositeParams)) Option {
	return func(n *Node) {
		if n.Composite != nil {
			f(n.Composite)
		}
	}
}

// WithDecorator adjusts the decorator parameter bag. The option is
// ignored for non-decorator nodes.
func WithDecorator(f func(*DecoratorParams)) Option {
	return func(n *Node) {
		if n.Decorator != nil {
			f(n.Decorator)
		}
	}
}

// WithAction adjusts the action parameter bag. The option is ignored
// for non-action nodes.
func WithAction(f func(*ActionParams)) Option {
	return func(n *Node) {
		if n.Action != nil {
			f(n.Action)
		}
	}
}

// WithCondition adjusts the condition parameter bag. The option is
// ignored for non-condition nodes.
func WithCondition(f func(*ConditionParams)) Option {
	return func(n *Node) {
		if n.Condition != nil {
			f(n.Condition)
		}
	}
}

// New builds an unattached node of the given type with a fresh ID and
// category-correct defaults, then applies the options on top. The node
// has no parent until a mutator attaches it.
func New(t NodeType, opts ...Option) Node {
	n := Node{
		ID:          GenerateID(),
		Type:        t,
		Name:        DefaultName(t),
		Description: DefaultDescription(t),
		Children:    []string{},
	}

	switch CategoryOf(t) {
	case CategoryComposite:
		n.Composite = defaultCompositeParams(t)
	case CategoryDecorator:
		n.Decorator = defaultDecoratorParams(t)
	case CategoryLeaf:
		if t == TypeAction {
			n.Action = defaultActionParams()
		} else {
			n.Condition = defaultConditionParams()
		}
	}

	for _, opt := range opts {
		opt(&n)
	}
	return n
}

func defaultCompositeParams(t NodeType) *CompositeParams {
	p := &CompositeParams{}
	if t == TypeParallel {
		p.SuccessPolicy = "require_all"
		p.FailurePolicy = "require_one"
	}
	return p
}

func defaultDecoratorParams(t NodeType) *DecoratorParams {
	p := &DecoratorParams{}
	switch t {
	case TypeRepeater:
		p.RepeatCount = 3
	case TypeCooldown:
		p.CooldownMs = 5000
	case TypeConditionGuard:
		p.GuardCondition = "HasTarget"
	}
	return p
}

func defaultActionParams() *ActionParams {
	return &ActionParams{
		ActionType: "CastSpell",
		TargetType: "enemy",
		Priority:   5,
	}
}

func defaultConditionParams() *ConditionParams {
	return &ConditionParams{
		ConditionType: "health_pct",
		Operator:      "<",
		Value:         "50",
		CheckTarget:   "self",
	}
}
