// Package template provides named prebuilt behavior trees composed from
// the factory and mutator primitives. Every registered template passes
// the structural validator with zero error-severity issues and is meant
// as a starting point for a new document.
package template

import "github.com/agatho/bottree/pkg/btree"

// Template is a named builder for a ready-made behavior tree.
type Template struct {
	Name        string
	Description string

	// Build constructs a fresh node collection and returns it together
	// with the root node's ID. Each call generates new node IDs.
	Build func() (nodes []btree.Node, rootID string)
}

// templates is the fixed registry. Names are unique.
var templates = []Template{
	{
		Name:        "basic-melee",
		Description: "Melee combat with an emergency heal and idle follow",
		Build:       buildBasicMelee,
	},
	{
		Name:        "holy-healer",
		Description: "Healing priority list with a mana break",
		Build:       buildHolyHealer,
	},
	{
		Name:        "frost-kiter",
		Description: "Caster rotation that kites melee attackers",
		Build:       buildFrostKiter,
	},
	{
		Name:        "burst-opener",
		Description: "Guarded burst sequence with cooldown and repeat decorators",
		Build:       buildBurstOpener,
	},
}

// All returns the registered templates in registration order.
func All() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// ByName looks up a template by its unique name.
func ByName(name string) (Template, bool) {
	for _, t := range templates {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names returns the registered template names in registration order.
func Names() []string {
	out := make([]string, len(templates))
	for i, t := range templates {
		out[i] = t.Name
	}
	return out
}
