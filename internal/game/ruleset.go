package game

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyActionSet is returned when a rule set is constructed
	// with no actions at all.
	ErrEmptyActionSet = errors.New("rule set has no actions")

	// ErrSelfDefeat is returned when a victory table lists an action
	// as defeating itself.
	ErrSelfDefeat = errors.New("action listed as defeating itself")

	// ErrMutualDefeat is returned when two actions are each listed as
	// defeating the other.
	ErrMutualDefeat = errors.New("two actions listed as defeating each other")
)

// RuleSet defines which moves defeat which others for one variant.
// Immutable after construction; safe to share between a Game and its
// strategies.
type RuleSet[M Move] struct {
	victories map[M][]M
	order     []M
}

// NewRuleSet validates a victory table and builds a RuleSet from it.
// The table's keys form the action domain. Construction fails on an
// empty table, a self-defeat entry, or a mutual-defeat pair; these are
// programming errors in the table, not recoverable conditions.
func NewRuleSet[M Move](victories map[M][]M) (*RuleSet[M], error) {
	if len(victories) == 0 {
		return nil, ErrEmptyActionSet
	}

	rs := &RuleSet[M]{
		victories: make(map[M][]M, len(victories)),
		order:     make([]M, 0, len(victories)),
	}
	for a, beats := range victories {
		rs.victories[a] = append([]M(nil), beats...)
		rs.order = append(rs.order, a)
	}
	sort.Slice(rs.order, func(i, j int) bool {
		return rs.order[i] < rs.order[j]
	})

	for _, a := range rs.order {
		for _, b := range rs.victories[a] {
			if b == a {
				return nil, fmt.Errorf("%w: %s", ErrSelfDefeat, a)
			}
			if rs.Defeats(b, a) {
				return nil, fmt.Errorf("%w: %s and %s", ErrMutualDefeat, a, b)
			}
		}
	}
	return rs, nil
}

// ValidActions returns the action domain in ascending ordinal order.
// The order is stable across calls; the slice is a fresh copy.
func (rs *RuleSet[M]) ValidActions() []M {
	return append([]M(nil), rs.order...)
}

// Defeats reports whether a defeats b. Actions outside the rule set's
// domain defeat nothing and are defeated by everything in it.
func (rs *RuleSet[M]) Defeats(a, b M) bool {
	for _, beaten := range rs.victories[a] {
		if beaten == b {
			return true
		}
	}
	return false
}

// Size returns the number of actions in the rule set's domain.
func (rs *RuleSet[M]) Size() int {
	return len(rs.order)
}
