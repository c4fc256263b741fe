package statemachine

import (
	"strings"

	"food-ordering-api/models"
)

// Transition is a permitted change of an order's payment status.
type Transition struct {
	From models.PaymentStatus `json:"from"`
	To   models.PaymentStatus `json:"to"`
}

// validTransitions is the authoritative payment state machine. Writing the
// current status again is a no-op and always allowed.
var validTransitions = []Transition{
	{From: models.PaymentUnpaid, To: models.PaymentPaid},
}

var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool)
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// TransitionError reports a payment change the state machine forbids.
type TransitionError struct {
	From models.PaymentStatus
	To   models.PaymentStatus
}

func (e *TransitionError) Error() string {
	return "invalid payment transition: " + string(e.From) + " -> " + string(e.To) +
		". Valid transitions from " + string(e.From) + " are: " + describeValidFrom(e.From)
}

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.PaymentStatus) []models.PaymentStatus {
	var nexts []models.PaymentStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move between payment states.
func CanTransition(from, to models.PaymentStatus) error {
	if from == to || transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return &TransitionError{From: from, To: to}
}

// IsTerminal reports whether no further change is possible.
func IsTerminal(status models.PaymentStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

func describeValidFrom(status models.PaymentStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// GetAllTransitions returns the full state machine for documentation.
func GetAllTransitions() []Transition {
	return validTransitions
}
