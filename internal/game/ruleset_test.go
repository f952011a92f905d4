package game

import (
	"errors"
	"testing"
)

func TestValidActionsOrder(t *testing.T) {
	tests := []struct {
		name string
		got  []Action
		want []Action
	}{
		{"classic", NewClassic().ValidActions(), []Action{Rock, Paper, Scissors}},
		{"extended", NewExtended().ValidActions(), []Action{Rock, Paper, Scissors, Lizard, Spock}},
	}

	for _, tt := range tests {
		if len(tt.got) != len(tt.want) {
			t.Fatalf("%s: got %d actions, want %d", tt.name, len(tt.got), len(tt.want))
		}
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s: action %d = %s, want %s", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

func TestValidActionsStable(t *testing.T) {
	rs := NewExtended()
	first := rs.ValidActions()
	for call := 0; call < 5; call++ {
		again := rs.ValidActions()
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("call %d: action %d = %s, want %s", call, i, again[i], first[i])
			}
		}
	}
}

func TestNoSelfDefeat(t *testing.T) {
	for _, rs := range []*RuleSet[Action]{NewClassic(), NewExtended()} {
		for _, a := range rs.ValidActions() {
			if rs.Defeats(a, a) {
				t.Errorf("%s listed as defeating itself", a)
			}
		}
	}
	fw := NewFireWater()
	for _, a := range fw.ValidActions() {
		if fw.Defeats(a, a) {
			t.Errorf("%s listed as defeating itself", a)
		}
	}
}

func TestNoMutualDefeat(t *testing.T) {
	for _, rs := range []*RuleSet[Action]{NewClassic(), NewExtended()} {
		actions := rs.ValidActions()
		for _, a := range actions {
			for _, b := range actions {
				if a != b && rs.Defeats(a, b) && rs.Defeats(b, a) {
					t.Errorf("%s and %s defeat each other", a, b)
				}
			}
		}
	}
}

func TestClassicDefeats(t *testing.T) {
	rs := NewClassic()
	tests := []struct {
		a, b Action
		want bool
	}{
		{Rock, Scissors, true},
		{Scissors, Paper, true},
		{Paper, Rock, true},
		{Scissors, Rock, false},
		{Paper, Scissors, false},
		{Rock, Paper, false},
	}
	for _, tt := range tests {
		if got := rs.Defeats(tt.a, tt.b); got != tt.want {
			t.Errorf("Defeats(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDefeatsOutsideDomain(t *testing.T) {
	rs := NewClassic()
	if rs.Defeats(Lizard, Rock) {
		t.Error("action outside the classic domain should defeat nothing")
	}
	if rs.Defeats(Rock, Lizard) {
		t.Error("Rock should not defeat an action outside the classic domain")
	}
}

func TestNewRuleSetRejectsEmpty(t *testing.T) {
	_, err := NewRuleSet(map[Action][]Action{})
	if !errors.Is(err, ErrEmptyActionSet) {
		t.Fatalf("got %v, want ErrEmptyActionSet", err)
	}
}

func TestNewRuleSetRejectsSelfDefeat(t *testing.T) {
	_, err := NewRuleSet(map[Action][]Action{
		Rock: {Rock},
	})
	if !errors.Is(err, ErrSelfDefeat) {
		t.Fatalf("got %v, want ErrSelfDefeat", err)
	}
}

func TestNewRuleSetRejectsMutualDefeat(t *testing.T) {
	_, err := NewRuleSet(map[Action][]Action{
		Rock:  {Paper},
		Paper: {Rock},
	})
	if !errors.Is(err, ErrMutualDefeat) {
		t.Fatalf("got %v, want ErrMutualDefeat", err)
	}
}

func TestExtendedDefeatsOrdinal(t *testing.T) {
	tests := []struct {
		a, b uint8
		want bool
	}{
		{uint8(Paper), uint8(Rock), true},
		{uint8(Spock), uint8(Rock), true},
		{uint8(Rock), uint8(Lizard), true},
		{uint8(Rock), uint8(Paper), false},
		{uint8(Lizard), uint8(Rock), false},
	}
	for _, tt := range tests {
		if got := ExtendedDefeatsOrdinal(tt.a, tt.b); got != tt.want {
			t.Errorf("ExtendedDefeatsOrdinal(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFireWaterDefeats(t *testing.T) {
	rs := NewFireWater()
	tests := []struct {
		a, b FireWaterAction
		want bool
	}{
		{Water, Fire, true},
		{Fire, FireWaterScissors, true},
		{FireWaterRock, Fire, true},
		{Fire, Water, false},
		{Water, FireWaterPaper, false},
	}
	for _, tt := range tests {
		if got := rs.Defeats(tt.a, tt.b); got != tt.want {
			t.Errorf("Defeats(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
