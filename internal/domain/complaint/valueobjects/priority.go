package valueobjects

import (
	"fmt"
	"time"
)

type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

var prioritySLAHours = map[Priority]int{
	PriorityLow:      72,
	PriorityMedium:   24,
	PriorityHigh:     8,
	PriorityCritical: 2,
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := prioritySLAHours[p]
	return ok
}

// SLA is the first-response target for the priority; unknown priorities get
// the LOW target.
func (p Priority) SLA() time.Duration {
	hours, ok := prioritySLAHours[p]
	if !ok {
		hours = prioritySLAHours[PriorityLow]
	}
	return time.Duration(hours) * time.Hour
}
