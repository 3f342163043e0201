package wizard

import (
	"time"

	"dive-booking/booking"
	"dive-booking/catalog"
	"dive-booking/schedule"
)

// Session is one guest's progress through the wizard.
type Session struct {
	ID        string        `json:"id"`
	Draft     booking.Draft `json:"draft"`
	Position  int           `json:"position"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// NewSession starts a wizard on the first step with the default draft.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, Draft: booking.NewDraft(), UpdatedAt: now}
}

// Steps returns the step list for the session's current choices.
func (s *Session) Steps() []StepID {
	return StepsFor(s.Draft.TripType, s.Draft.CombinationOrder)
}

// Current returns the step the session is on.
func (s *Session) Current() StepID {
	steps := s.Steps()
	return steps[clamp(s.Position, len(steps))]
}

// IsLast reports whether the session is on its final step.
func (s *Session) IsLast() bool {
	return s.Position >= len(s.Steps())-1
}

// Update replaces the draft. Switching away from a chosen trip type or
// combination order clears every trip-specific selection, and a smaller party drops activity entries for
// guests who are gone. The position is clamped to the new step list.
func (s *Session) Update(next booking.Draft, now time.Time) {
	next = next.Clone()
	next.Normalize()
	if changed(s.Draft.TripType, next.TripType) || changed(s.Draft.CombinationOrder, next.CombinationOrder) {
		next.ResetItinerary()
	}
	if next.Guests() != s.Draft.Guests() {
		next.ActivityDays = next.ActivityDays.Prune(next.Guests())
	}
	s.Draft = next
	s.Position = clamp(s.Position, len(s.Steps()))
	s.UpdatedAt = now
}

// Next advances one step when the current step's gate passes. Leaving the
// activities step with a package but no allocation books every guest for the
// maximum days first. On the last step Next only validates.
func (s *Session) Next(lookup catalog.Lookup, rules schedule.Rules, now time.Time) error {
	step := s.Current()
	if step == StepActivities {
		s.Draft.FillDefaultAllocation()
	}
	if err := Gate(step, s.Draft, lookup, rules).Err(); err != nil {
		return err
	}
	s.Position = clamp(s.Position+1, len(s.Steps()))
	s.UpdatedAt = now
	return nil
}

// Back moves one step back, never before the first step.
func (s *Session) Back(now time.Time) {
	s.Position = clamp(s.Position-1, len(s.Steps()))
	s.UpdatedAt = now
}

// changed reports a switch away from an earlier choice. Making the first
// choice is not a change.
func changed[T ~string](prev, next T) bool {
	return prev != "" && prev != next
}

func clamp(pos, n int) int {
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}
