package valueobjects

import "fmt"

type ComplaintStatus string

const (
	StatusPending    ComplaintStatus = "PENDING"
	StatusInProgress ComplaintStatus = "IN_PROGRESS"
	StatusResolved   ComplaintStatus = "RESOLVED"
	StatusClosed     ComplaintStatus = "CLOSED"
	StatusWithdrawn  ComplaintStatus = "WITHDRAWN"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
	StatusWithdrawn:  true,
}

// complaintStatusTransitions is the full lifecycle. Terminal statuses have no entry.
var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusPending: {
		StatusInProgress,
		StatusWithdrawn,
	},
	StatusInProgress: {
		StatusResolved,
		StatusWithdrawn,
	},
	StatusResolved: {
		StatusClosed,
	},
}

func NewComplaintStatus(s string) (ComplaintStatus, error) {
	status := ComplaintStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid complaint status: %s", s)
	}
	return status, nil
}

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[s]
}

func (s ComplaintStatus) CanTransitionTo(newStatus ComplaintStatus) bool {
	for _, allowed := range complaintStatusTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable in one step.
func (s ComplaintStatus) AllowedTransitions() []ComplaintStatus {
	allowed := complaintStatusTransitions[s]
	out := make([]ComplaintStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports CLOSED and WITHDRAWN.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusClosed || s == StatusWithdrawn
}

// IsWithdrawal reports the client-initiated cancellation target.
func (s ComplaintStatus) IsWithdrawal() bool {
	return s == StatusWithdrawn
}

func (s ComplaintStatus) IsResolved() bool {
	return s == StatusResolved
}
