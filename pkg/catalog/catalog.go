// Package catalog holds the static reference tables describing valid
// action and condition leaf parameters. The tables are descriptive data
// consumed by parameter-editing UIs; the validator is the only internal
// consumer, using the requirement flags to enforce field rules instead
// of hardcoding per-type logic.
package catalog

// Action categories group related action types for UI listings.
const (
	ActionCombat    = "combat"
	ActionHealing   = "healing"
	ActionMovement  = "movement"
	ActionTargeting = "targeting"
	ActionUtility   = "utility"
)

// Condition categories group related condition types for UI listings.
const (
	ConditionResource = "resource"
	ConditionTarget   = "target"
	ConditionRange    = "range"
	ConditionAura     = "aura"
	ConditionCooldown = "cooldown"
	ConditionState    = "state"
)

// ActionDescriptor describes one action type an action leaf can perform.
type ActionDescriptor struct {
	Value           string `json:"value"`
	Category        string `json:"category"`
	Label           string `json:"label"`
	Description     string `json:"description"`
	RequiresSpellID bool   `json:"requiresSpellId"`
	RequiresTarget  bool   `json:"requiresTarget"`
}

// ConditionDescriptor describes one condition type a condition leaf can
// test, including the comparison operators it supports and a hint for
// the expected value format.
type ConditionDescriptor struct {
	Value       string   `json:"value"`
	Category    string   `json:"category"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Operators   []string `json:"operators"`
	ValueHint   string   `json:"valueHint"`
}

var actions = []ActionDescriptor{
	{Value: "CastSpell", Category: ActionCombat, Label: "Cast Spell", Description: "Cast a spell on the current target", RequiresSpellID: true, RequiresTarget: true},
	{Value: "CastSpellOnSelf", Category: ActionCombat, Label: "Cast Spell on Self", Description: "Cast a spell with the bot itself as the target", RequiresSpellID: true},
	{Value: "MeleeAttack", Category: ActionCombat, Label: "Melee Attack", Description: "Enable auto-attack against the current target", RequiresTarget: true},
	{Value: "RangedAttack", Category: ActionCombat, Label: "Ranged Attack", Description: "Shoot the current target with the equipped ranged weapon", RequiresTarget: true},
	{Value: "Interrupt", Category: ActionCombat, Label: "Interrupt", Description: "Interrupt the target's spellcast with an interrupt ability", RequiresSpellID: true, RequiresTarget: true},
	{Value: "StopCasting", Category: ActionCombat, Label: "Stop Casting", Description: "Cancel the spell currently being cast"},
	{Value: "SetStance", Category: ActionCombat, Label: "Set Stance", Description: "Switch to a stance, form, or aura", RequiresSpellID: true},
	{Value: "HealSelf", Category: ActionHealing, Label: "Heal Self", Description: "Cast a healing spell on the bot itself", RequiresSpellID: true},
	{Value: "HealTarget", Category: ActionHealing, Label: "Heal Target", Description: "Cast a healing spell on the current target", RequiresSpellID: true, RequiresTarget: true},
	{Value: "CleanseTarget", Category: ActionHealing, Label: "Cleanse Target", Description: "Remove a harmful effect from the current target", RequiresSpellID: true, RequiresTarget: true},
	{Value: "Bandage", Category: ActionHealing, Label: "Bandage", Description: "Use a first-aid bandage on the bot itself"},
	{Value: "MoveToTarget", Category: ActionMovement, Label: "Move to Target", Description: "Path toward the current target until in range", RequiresTarget: true},
	{Value: "MoveToPosition", Category: ActionMovement, Label: "Move to Position", Description: "Path to a fixed map position"},
	{Value: "Kite", Category: ActionMovement, Label: "Kite", Description: "Keep distance from the current target while staying in combat", RequiresTarget: true},
	{Value: "Flee", Category: ActionMovement, Label: "Flee", Description: "Run away from the current threat"},
	{Value: "FollowMaster", Category: ActionMovement, Label: "Follow Master", Description: "Follow the bot's owner at follow distance"},
	{Value: "FaceTarget", Category: ActionTargeting, Label: "Face Target", Description: "Turn to face the current target", RequiresTarget: true},
	{Value: "TargetNearestEnemy", Category: ActionTargeting, Label: "Target Nearest Enemy", Description: "Select the closest attackable enemy"},
	{Value: "TargetLowestHealthAlly", Category: ActionTargeting, Label: "Target Lowest Health Ally", Description: "Select the group member with the lowest health"},
	{Value: "AssistMaster", Category: ActionTargeting, Label: "Assist Master", Description: "Target whatever the bot's owner is attacking"},
	{Value: "UseItem", Category: ActionUtility, Label: "Use Item", Description: "Use a consumable or quest item from the bags"},
	{Value: "UseTrinket", Category: ActionUtility, Label: "Use Trinket", Description: "Activate an equipped on-use trinket"},
	{Value: "Eat", Category: ActionUtility, Label: "Eat", Description: "Eat food to restore health out of combat"},
	{Value: "Drink", Category: ActionUtility, Label: "Drink", Description: "Drink to restore mana out of combat"},
	{Value: "Wait", Category: ActionUtility, Label: "Wait", Description: "Do nothing for a short interval"},
}

var conditions = []ConditionDescriptor{
	{Value: "health_pct", Category: ConditionResource, Label: "Health %", Description: "Health of the checked unit as a percentage", Operators: []string{"<", ">", "<=", ">="}, ValueHint: "percentage 0-100"},
	{Value: "mana_pct", Category: ConditionResource, Label: "Mana %", Description: "Mana of the checked unit as a percentage", Operators: []string{"<", ">", "<=", ">="}, ValueHint: "percentage 0-100"},
	{Value: "power_amount", Category: ConditionResource, Label: "Power Amount", Description: "Current rage, energy, or focus of the checked unit", Operators: []string{"<", ">", ">="}, ValueHint: "absolute power value"},
	{Value: "combo_points", Category: ConditionResource, Label: "Combo Points", Description: "Combo points accumulated on the current target", Operators: []string{"<", ">", "==", ">="}, ValueHint: "count 0-5"},
	{Value: "has_target", Category: ConditionTarget, Label: "Has Target", Description: "Whether the bot currently has a target selected", Operators: []string{"=="}, ValueHint: "true or false"},
	{Value: "target_health_pct", Category: ConditionTarget, Label: "Target Health %", Description: "Health of the current target as a percentage", Operators: []string{"<", ">", "<=", ">="}, ValueHint: "percentage 0-100"},
	{Value: "target_is_casting", Category: ConditionTarget, Label: "Target Is Casting", Description: "Whether the current target is casting a spell", Operators: []string{"=="}, ValueHint: "true or false"},
	{Value: "target_is_elite", Category: ConditionTarget, Label: "Target Is Elite", Description: "Whether the current target is an elite creature", Operators: []string{"=="}, ValueHint: "true or false"},
	{Value: "target_distance", Category: ConditionRange, Label: "Target Distance", Description: "Distance to the current target", Operators: []string{"<", ">"}, ValueHint: "yards"},
	{Value: "enemies_in_range", Category: ConditionRange, Label: "Enemies in Range", Description: "Number of hostile units within the given range", Operators: []string{"<", ">", "=="}, ValueHint: "count"},
	{Value: "allies_in_range", Category: ConditionRange, Label: "Allies in Range", Description: "Number of friendly units within the given range", Operators: []string{"<", ">", "=="}, ValueHint: "count"},
	{Value: "has_aura", Category: ConditionAura, Label: "Has Aura", Description: "Whether the checked unit carries the given aura", Operators: []string{"==", "!="}, ValueHint: "aura spell ID"},
	{Value: "target_has_aura", Category: ConditionAura, Label: "Target Has Aura", Description: "Whether the current target carries the given aura", Operators: []string{"==", "!="}, ValueHint: "aura spell ID"},
	{Value: "aura_stacks", Category: ConditionAura, Label: "Aura Stacks", Description: "Stack count of the given aura on the checked unit", Operators: []string{"<", ">", "=="}, ValueHint: "stack count"},
	{Value: "spell_ready", Category: ConditionCooldown, Label: "Spell Ready", Description: "Whether the given spell is off cooldown", Operators: []string{"=="}, ValueHint: "spell ID"},
	{Value: "item_ready", Category: ConditionCooldown, Label: "Item Ready", Description: "Whether the given item is off cooldown", Operators: []string{"=="}, ValueHint: "item ID"},
	{Value: "in_combat", Category: ConditionState, Label: "In Combat", Description: "Whether the bot is currently in combat", Operators: []string{"=="}, ValueHint: "true or false"},
	{Value: "is_moving", Category: ConditionState, Label: "Is Moving", Description: "Whether the bot is currently moving", Operators: []string{"=="}, ValueHint: "true or false"},
	{Value: "level_diff", Category: ConditionState, Label: "Level Difference", Description: "Target level minus bot level", Operators: []string{"<", ">"}, ValueHint: "signed level delta"},
}

var (
	actionIndex    map[string]int
	conditionIndex map[string]int
)

func init() {
	actionIndex = make(map[string]int, len(actions))
	for i, a := range actions {
		actionIndex[a.Value] = i
	}
	conditionIndex = make(map[string]int, len(conditions))
	for i, c := range conditions {
		conditionIndex[c.Value] = i
	}
}

// Actions returns all action descriptors in catalog order.
func Actions() []ActionDescriptor {
	out := make([]ActionDescriptor, len(actions))
	copy(out, actions)
	return out
}

// Conditions returns all condition descriptors in catalog order.
func Conditions() []ConditionDescriptor {
	out := make([]ConditionDescriptor, len(conditions))
	copy(out, conditions)
	return out
}

// ActionByValue looks up an action descriptor by its value.
func ActionByValue(value string) (ActionDescriptor, bool) {
	i, ok := actionIndex[value]
	if !ok {
		return ActionDescriptor{}, false
	}
	return actions[i], true
}

// ConditionByValue looks up a condition descriptor by its value.
func ConditionByValue(value string) (ConditionDescriptor, bool) {
	i, ok := conditionIndex[value]
	if !ok {
		return ConditionDescriptor{}, false
	}
	return conditions[i], true
}

// ActionsByCategory returns the action descriptors in the given category,
// preserving catalog order.
func ActionsByCategory(category string) []ActionDescriptor {
	var out []ActionDescriptor
	for _, a := range actions {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

// ConditionsByCategory returns the condition descriptors in the given
// category, preserving catalog order.
func ConditionsByCategory(category string) []ConditionDescriptor {
	var out []ConditionDescriptor
	for _, c := range conditions {
		if c.Category == category {
			out = append(out, c)
		}
	}
	return out
}
