package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusOpen      ComplaintStatus = "open"
	StatusAssigned  ComplaintStatus = "assigned"
	StatusEscalated ComplaintStatus = "escalated"
	StatusResolved  ComplaintStatus = "resolved"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusOpen:      true,
	StatusAssigned:  true,
	StatusEscalated: true,
	StatusResolved:  true,
}

// Status only moves forward; resolved is terminal with no outgoing edges.
var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusOpen: {
		StatusAssigned,
		StatusEscalated,
		StatusResolved,
	},
	StatusAssigned: {
		StatusEscalated,
		StatusResolved,
	},
	StatusEscalated: {
		StatusResolved,
	},
	StatusResolved: {},
}

func (cs ComplaintStatus) String() string {
	return string(cs)
}

func (cs ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[cs]
}

func (cs ComplaintStatus) CanTransitionTo(newStatus ComplaintStatus) bool {
	for _, allowed := range complaintStatusTransitions[cs] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (cs ComplaintStatus) IsOpen() bool {
	return cs == StatusOpen
}

func (cs ComplaintStatus) IsAssigned() bool {
	return cs == StatusAssigned
}

func (cs ComplaintStatus) IsEscalated() bool {
	return cs == StatusEscalated
}

func (cs ComplaintStatus) IsResolved() bool {
	return cs == StatusResolved
}

// IsSweepable reports whether the escalation sweep still acts on this status.
// Escalated and resolved are absorbing for the scheduler.
func (cs ComplaintStatus) IsSweepable() bool {
	return cs == StatusOpen || cs == StatusAssigned
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	cs := ComplaintStatus(s)
	if !cs.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return cs, nil
}
