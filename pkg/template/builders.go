package template

import "github.com/agatho/bottree/pkg/btree"

// append-style helper: attach adds child as the last child of parentID.
func attach(nodes []btree.Node, parentID string, child btree.Node) []btree.Node {
	return btree.AddChild(nodes, parentID, child, -1)
}

// buildBasicMelee produces a selector that tries an emergency heal,
// then attacks the current target, and falls back to following the
// bot's owner.
func buildBasicMelee() ([]btree.Node, string) {
	root := btree.New(btree.TypeSelector, btree.WithName("Combat Root"))
	nodes := []btree.Node{root}

	emergency := btree.New(btree.TypeSequence, btree.WithName("Emergency"))
	nodes = attach(nodes, root.ID, emergency)
	nodes = attach(nodes, emergency.ID, btree.New(btree.TypeCondition,
		btree.WithName("Low Health"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "health_pct"
			p.Operator = "<"
			p.Value = "30"
			p.CheckTarget = "self"
		})))
	nodes = attach(nodes, emergency.ID, btree.New(btree.TypeAction,
		btree.WithName("Healing Potion"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "UseItem"
			p.TargetType = "self"
			p.Priority = 10
		})))

	attack := btree.New(btree.TypeSequence, btree.WithName("Attack"))
	nodes = attach(nodes, root.ID, attack)
	nodes = attach(nodes, attack.ID, btree.New(btree.TypeCondition,
		btree.WithName("Has Target"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "has_target"
			p.Operator = "=="
			p.Value = "true"
			p.CheckTarget = "self"
		})))
	nodes = attach(nodes, attack.ID, btree.New(btree.TypeAction,
		btree.WithName("Melee Attack"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "MeleeAttack"
		})))

	nodes = attach(nodes, root.ID, btree.New(btree.TypeAction,
		btree.WithName("Follow Master"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "FollowMaster"
			p.TargetType = "master"
			p.Priority = 1
		})))

	return nodes, root.ID
}

// buildHolyHealer produces a healing priority list: critical heal,
// top-up heal, mana break, then follow.
func buildHolyHealer() ([]btree.Node, string) {
	root := btree.New(btree.TypeSelector, btree.WithName("Healing Priority"))
	nodes := []btree.Node{root}

	critical := btree.New(btree.TypeSequence, btree.WithName("Critical Heal"))
	nodes = attach(nodes, root.ID, critical)
	nodes = attach(nodes, critical.ID, btree.New(btree.TypeCondition,
		btree.WithName("Ally Critical"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "target_health_pct"
			p.Operator = "<"
			p.Value = "35"
			p.CheckTarget = "ally"
		})))
	nodes = attach(nodes, critical.ID, btree.New(btree.TypeAction,
		btree.WithName("Flash Heal"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "HealTarget"
			p.TargetType = "ally"
			p.Priority = 10
			p.SpellID = 2061
		})))

	topup := btree.New(btree.TypeSequence, btree.WithName("Top-up Heal"))
	nodes = attach(nodes, root.ID, topup)
	nodes = attach(nodes, topup.ID, btree.New(btree.TypeCondition,
		btree.WithName("Ally Hurt"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "target_health_pct"
			p.Operator = "<"
			p.Value = "80"
			p.CheckTarget = "ally"
		})))
	nodes = attach(nodes, topup.ID, btree.New(btree.TypeAction,
		btree.WithName("Renew"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "HealTarget"
			p.TargetType = "ally"
			p.Priority = 6
			p.SpellID = 139
		})))

	manaBreak := btree.New(btree.TypeSequence, btree.WithName("Mana Break"))
	nodes = attach(nodes, root.ID, manaBreak)
	nodes = attach(nodes, manaBreak.ID, btree.New(btree.TypeCondition,
		btree.WithName("Low Mana"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "mana_pct"
			p.Operator = "<"
			p.Value = "20"
			p.CheckTarget = "self"
		})))
	nodes = attach(nodes, manaBreak.ID, btree.New(btree.TypeAction,
		btree.WithName("Drink"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "Drink"
			p.TargetType = "self"
			p.Priority = 3
		})))

	nodes = attach(nodes, root.ID, btree.New(btree.TypeAction,
		btree.WithName("Follow Master"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "FollowMaster"
			p.TargetType = "master"
			p.Priority = 1
		})))

	return nodes, root.ID
}

// buildFrostKiter produces a caster loop that backs away from close
// attackers before nuking.
func buildFrostKiter() ([]btree.Node, string) {
	root := btree.New(btree.TypeSelector, btree.WithName("Kite Root"))
	nodes := []btree.Node{root}

	keepDistance := btree.New(btree.TypeSequence, btree.WithName("Keep Distance"))
	nodes = attach(nodes, root.ID, keepDistance)
	nodes = attach(nodes, keepDistance.ID, btree.New(btree.TypeCondition,
		btree.WithName("Target Too Close"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "target_distance"
			p.Operator = "<"
			p.Value = "8"
			p.CheckTarget = "enemy"
		})))
	nodes = attach(nodes, keepDistance.ID, btree.New(btree.TypeAction,
		btree.WithName("Kite"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "Kite"
			p.Priority = 8
		})))

	nuke := btree.New(btree.TypeSequence, btree.WithName("Nuke"))
	nodes = attach(nodes, root.ID, nuke)
	nodes = attach(nodes, nuke.ID, btree.New(btree.TypeCondition,
		btree.WithName("Frostbolt Ready"),
		btree.WithCondition(func(p *btree.ConditionParams) {
			p.ConditionType = "spell_ready"
			p.Operator = "=="
			p.Value = "116"
			p.CheckTarget = "self"
		})))
	nodes = attach(nodes, nuke.ID, btree.New(btree.TypeAction,
		btree.WithName("Frostbolt"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "CastSpell"
			p.Priority = 7
			p.SpellID = 116
		})))

	nodes = attach(nodes, root.ID, btree.New(btree.TypeAction,
		btree.WithName("Wand"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "RangedAttack"
			p.Priority = 2
		})))

	return nodes, root.ID
}

// buildBurstOpener produces a guarded burst chain exercising the
// cooldown and repeater decorators.
func buildBurstOpener() ([]btree.Node, string) {
	root := btree.New(btree.TypeSequence, btree.WithName("Opener"))
	nodes := []btree.Node{root}

	guard := btree.New(btree.TypeConditionGuard, btree.WithName("While Target Alive"))
	nodes = attach(nodes, root.ID, guard)

	burst := btree.New(btree.TypeSequence, btree.WithName("Burst"))
	nodes = attach(nodes, guard.ID, burst)

	nodes = attach(nodes, burst.ID, btree.New(btree.TypeAction,
		btree.WithName("Pop Trinket"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "UseTrinket"
			p.TargetType = "self"
			p.Priority = 9
		})))

	icyVeins := btree.New(btree.TypeCooldown,
		btree.WithName("Icy Veins Gate"),
		btree.WithDecorator(func(p *btree.DecoratorParams) { p.CooldownMs = 180000 }))
	nodes = attach(nodes, burst.ID, icyVeins)
	nodes = attach(nodes, icyVeins.ID, btree.New(btree.TypeAction,
		btree.WithName("Icy Veins"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "CastSpellOnSelf"
			p.TargetType = "self"
			p.Priority = 9
			p.SpellID = 12472
		})))

	lances := btree.New(btree.TypeRepeater,
		btree.WithName("Lance x3"),
		btree.WithDecorator(func(p *btree.DecoratorParams) { p.RepeatCount = 3 }))
	nodes = attach(nodes, burst.ID, lances)
	nodes = attach(nodes, lances.ID, btree.New(btree.TypeAction,
		btree.WithName("Ice Lance"),
		btree.WithAction(func(p *btree.ActionParams) {
			p.ActionType = "CastSpell"
			p.Priority = 8
			p.SpellID = 30455
		})))

	return nodes, root.ID
}
