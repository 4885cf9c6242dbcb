// Package flow sequences the steps of a build: budget, the four option
// categories, then the summary. Navigation never touches the ledger.
package flow

import (
	"errors"

	"github.com/theirongolddev/ethicsim/internal/model"
)

// Step is one screen of the build flow.
type Step int

const (
	StepBudget Step = iota
	StepData
	StepFiltering
	StepBehavior
	StepBias
	StepSummary
)

// Steps lists every step in order.
var Steps = []Step{StepBudget, StepData, StepFiltering, StepBehavior, StepBias, StepSummary}

var (
	// ErrIncomplete is returned when advancing past a step that still needs a choice.
	ErrIncomplete = errors.New("current step is not complete")
	// ErrAtStart is returned when retreating from the first step.
	ErrAtStart = errors.New("already at the first step")
	// ErrAtEnd is returned when advancing from the summary.
	ErrAtEnd = errors.New("already at the summary")
)

// Category returns the option category edited at s, if any.
func (s Step) Category() (model.Category, bool) {
	switch s {
	case StepData:
		return model.CategoryData, true
	case StepFiltering:
		return model.CategoryFiltering, true
	case StepBehavior:
		return model.CategoryBehavior, true
	case StepBias:
		return model.CategoryBias, true
	}
	return "", false
}

// Title returns the heading of s.
func (s Step) Title() string {
	if c, ok := s.Category(); ok {
		return c.Label()
	}
	switch s {
	case StepBudget:
		return "Budget"
	case StepSummary:
		return "Summary"
	}
	return "?"
}

// Completer reports whether a step has the choices it needs.
type Completer interface {
	StepComplete(s Step) bool
}

// IsStepComplete decides completeness from the current selections.
func IsStepComplete(s Step, sel model.Selections) bool {
	switch s {
	case StepBudget:
		return sel.Tier.Valid()
	case StepSummary:
		return true
	}
	c, _ := s.Category()
	return len(sel.Active(c)) > 0
}

// Flow is a linear cursor over Steps.
type Flow struct {
	current Step
}

// Current returns the active step.
func (f *Flow) Current() Step {
	return f.current
}

// Advance moves forward when the current step is complete.
func (f *Flow) Advance(c Completer) error {
	if f.current == StepSummary {
		return ErrAtEnd
	}
	if !c.StepComplete(f.current) {
		return ErrIncomplete
	}
	f.current++
	return nil
}

// Retreat moves back one step. It is allowed regardless of completeness.
func (f *Flow) Retreat() error {
	if f.current == StepBudget {
		return ErrAtStart
	}
	f.current--
	return nil
}

// Reset returns to the budget step.
func (f *Flow) Reset() {
	f.current = StepBudget
}
