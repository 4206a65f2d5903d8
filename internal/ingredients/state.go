// Package ingredients holds the user's ingredient selection as an
// event-driven state container: a pure reducer over dispatched actions,
// with asynchronous side effects (suggestion lookups, persistence) kept
// outside the reducer.
package ingredients

import (
	"slices"
	"strings"
)

// State is the container's full state. Submitted is an ordered set:
// lowercase trimmed names, unique by value, insertion order preserved.
type State struct {
	Submitted   []string `json:"submitted_ingredients"`
	Suggestions []string `json:"suggestions"`
	Loading     bool     `json:"loading"`
	Error       string   `json:"error,omitempty"`
}

// Action is a state transition request. The concrete types below are
// the only implementations.
type Action interface {
	isAction()
}

type AddIngredient struct{ Name string }

type RemoveIngredient struct{ Name string }

type LoadSuggestions struct{ Query string }

type LoadSuggestionsSuccess struct{ Suggestions []string }

type LoadSuggestionsFailure struct{ Error string }

type LoadFromStorageSuccess struct{ Ingredients []string }

type ClearIngredients struct{}

func (AddIngredient) isAction()          {}
func (RemoveIngredient) isAction()       {}
func (LoadSuggestions) isAction()        {}
func (LoadSuggestionsSuccess) isAction() {}
func (LoadSuggestionsFailure) isAction() {}
func (LoadFromStorageSuccess) isAction() {}
func (ClearIngredients) isAction()       {}

// Normalize is the canonical form of an ingredient name.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Reduce applies one action to the state and returns the next state.
// Pure and synchronous; it never fails and performs no I/O. The input
// state is not mutated.
//
// AddIngredient deduplicates but does not cap the list; the MaxSubmitted
// limit is enforced on the dispatch loop before the reducer runs.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddIngredient:
		name := Normalize(a.Name)
		if name == "" || slices.Contains(s.Submitted, name) {
			return s
		}
		next := s
		next.Submitted = append(slices.Clone(s.Submitted), name)
		return next

	case RemoveIngredient:
		name := Normalize(a.Name)
		next := s
		next.Submitted = make([]string, 0, len(s.Submitted))
		for _, ing := range s.Submitted {
			if ing != name {
				next.Submitted = append(next.Submitted, ing)
			}
		}
		return next

	case LoadSuggestions:
		next := s
		next.Loading = true
		next.Error = ""
		return next

	case LoadSuggestionsSuccess:
		next := s
		next.Suggestions = a.Suggestions
		next.Loading = false
		return next

	case LoadSuggestionsFailure:
		next := s
		next.Error = a.Error
		next.Loading = false
		next.Suggestions = nil
		return next

	case LoadFromStorageSuccess:
		next := s
		next.Submitted = slices.Clone(a.Ingredients)
		return next

	case ClearIngredients:
		next := s
		next.Submitted = nil
		return next
	}

	return s
}
