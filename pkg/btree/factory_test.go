package btree

import (
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	ResetIDCounter()

	tests := []struct {
		name     string
		nodeType NodeType
		check    func(t *testing.T, n Node)
	}{
		{
			name:     "Sequence",
			nodeType: TypeSequence,
			check: func(t *testing.T, n Node) {
				if n.Name != "Sequence" {
					t.Errorf("name = %q, want Sequence", n.Name)
				}
				if n.Composite == nil {
					t.Fatal("composite params not populated")
				}
				if n.Composite.SuccessPolicy != "" {
					t.Errorf("sequence has policy %q, want empty", n.Composite.SuccessPolicy)
				}
			},
		},
		{
			name:     "ParallelPolicies",
			nodeType: TypeParallel,
			check: func(t *testing.T, n Node) {
				if n.Composite == nil {
					t.Fatal("composite params not populated")
				}
				if n.Composite.SuccessPolicy != "require_all" {
					t.Errorf("successPolicy = %q, want require_all", n.Composite.SuccessPolicy)
				}
				if n.Composite.FailurePolicy != "require_one" {
					t.Errorf("failurePolicy = %q, want require_one", n.Composite.FailurePolicy)
				}
			},
		},
		{
			name:     "Repeater",
			nodeType: TypeRepeater,
			check: func(t *testing.T, n Node) {
				if n.Decorator == nil {
					t.Fatal("decorator params not populated")
				}
				if n.Decorator.RepeatCount != 3 {
					t.Errorf("repeatCount = %d, want 3", n.Decorator.RepeatCount)
				}
			},
		},
		{
			name:     "Cooldown",
			nodeType: TypeCooldown,
			check: func(t *testing.T, n Node) {
				if n.Decorator.CooldownMs != 5000 {
					t.Errorf("cooldownMs = %d, want 5000", n.Decorator.CooldownMs)
				}
			},
		},
		{
			name:     "ConditionGuard",
			nodeType: TypeConditionGuard,
			check: func(t *testing.T, n Node) {
				if n.Decorator.GuardCondition != "HasTarget" {
					t.Errorf("guardCondition = %q, want HasTarget", n.Decorator.GuardCondition)
				}
			},
		},
		{
			name:     "Action",
			nodeType: TypeAction,
			check: func(t *testing.T, n Node) {
				if n.Action == nil {
					t.Fatal("action params not populated")
				}
				if n.Action.ActionType != "CastSpell" || n.Action.TargetType != "enemy" || n.Action.Priority != 5 {
					t.Errorf("unexpected action defaults: %+v", n.Action)
				}
			},
		},
		{
			name:     "Condition",
			nodeType: TypeCondition,
			check: func(t *testing.T, n Node) {
				if n.Condition == nil {
					t.Fatal("condition params not populated")
				}
				if n.Condition.ConditionType != "health_pct" || n.Condition.Operator != "<" || n.Condition.Value != "50" || n.Condition.CheckTarget != "self" {
					t.Errorf("unexpected condition defaults: %+v", n.Condition)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := New(tt.nodeType)

			if n.ID == "" {
				t.Error("node has no ID")
			}
			if n.ParentID != "" {
				t.Errorf("fresh node has parent %q", n.ParentID)
			}
			if n.Children == nil || len(n.Children) != 0 {
				t.Errorf("fresh node has children %v", n.Children)
			}

			bags := 0
			for _, populated := range []bool{n.Composite != nil, n.Decorator != nil, n.Action != nil, n.Condition != nil} {
				if populated {
					bags++
				}
			}
			if bags != 1 {
				t.Errorf("%d parameter bags populated, want exactly 1", bags)
			}

			tt.check(t, n)
		})
	}
}

func TestNewOptions(t *testing.T) {
	n := New(TypeAction,
		WithName("Frostbolt"),
		WithDescription("Nuke"),
		WithDisabled(),
		WithAction(func(p *ActionParams) {
			p.SpellID = 116
			p.Priority = 9
		}))

	if n.Name != "Frostbolt" || n.Description != "Nuke" || !n.Disabled {
		t.Errorf("options not applied: %+v", n)
	}
	if n.Action.SpellID != 116 || n.Action.Priority != 9 {
		t.Errorf("action overrides not applied: %+v", n.Action)
	}
	// Untouched defaults survive overrides.
	if n.Action.ActionType != "CastSpell" {
		t.Errorf("actionType = %q, want CastSpell", n.Action.ActionType)
	}
}

func TestOptionIgnoredForWrongCategory(t *testing.T) {
	n := New(TypeSequence, WithAction(func(p *ActionParams) { p.SpellID = 1 }))
	if n.Action != nil {
		t.Errorf("sequence gained action params: %+v", n.Action)
	}
}

func TestGenerateIDUnique(t *testing.T) {
	ResetIDCounter()

	seen := make(map[string]bool, 5000)
	for i := 0; i < 5000; i++ {
		id := GenerateID()
		if !strings.HasPrefix(id, "node-") {
			t.Fatalf("id %q missing prefix", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q after %d calls", id, i)
		}
		seen[id] = true
	}
}

func TestResetIDCounter(t *testing.T) {
	ResetIDCounter()
	first := GenerateID()

	ResetIDCounter()
	if again := GenerateID(); again != first {
		t.Errorf("after reset GenerateID() = %q, want %q", again, first)
	}
}
