package complaint

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

// Relation names describe how a user relates to a complaint. They are the
// relation subjects in the authorization policy.
const (
	RelationClient   = "client"
	RelationAssignee = "assignee"
)

// Complaint is the lifecycle aggregate.
type Complaint struct {
	id          uint
	title       string
	description string
	category    vo.Category
	status      vo.ComplaintStatus
	priority    vo.Priority
	clientID    uint
	assigneeID  *uint
	projectID   uint
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	resolvedAt  *time.Time
	closedAt    *time.Time
}

func NewComplaint(
	title string,
	description string,
	category vo.Category,
	priority vo.Priority,
	clientID uint,
	projectID uint,
) (*Complaint, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 10000 {
		return nil, fmt.Errorf("description exceeds maximum length of 10000 characters")
	}
	if !category.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", category)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if clientID == 0 {
		return nil, fmt.Errorf("client ID is required")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}

	now := biztime.NowUTC()
	return &Complaint{
		title:       title,
		description: description,
		category:    category,
		status:      vo.StatusPending,
		priority:    priority,
		clientID:    clientID,
		projectID:   projectID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructComplaint(
	id uint,
	title string,
	description string,
	category vo.Category,
	status vo.ComplaintStatus,
	priority vo.Priority,
	clientID uint,
	assigneeID *uint,
	projectID uint,
	version int,
	createdAt, updatedAt time.Time,
	resolvedAt, closedAt *time.Time,
) (*Complaint, error) {
	if id == 0 {
		return nil, fmt.Errorf("complaint ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Complaint{
		id:          id,
		title:       title,
		description: description,
		category:    category,
		status:      status,
		priority:    priority,
		clientID:    clientID,
		assigneeID:  assigneeID,
		projectID:   projectID,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		resolvedAt:  resolvedAt,
		closedAt:    closedAt,
	}, nil
}

func (c *Complaint) ID() uint                   { return c.id }
func (c *Complaint) Title() string              { return c.title }
func (c *Complaint) Description() string        { return c.description }
func (c *Complaint) Category() vo.Category      { return c.category }
func (c *Complaint) Status() vo.ComplaintStatus { return c.status }
func (c *Complaint) Priority() vo.Priority      { return c.priority }
func (c *Complaint) ClientID() uint             { return c.clientID }
func (c *Complaint) AssigneeID() *uint          { return c.assigneeID }
func (c *Complaint) ProjectID() uint            { return c.projectID }
func (c *Complaint) Version() int               { return c.version }
func (c *Complaint) CreatedAt() time.Time       { return c.createdAt }
func (c *Complaint) UpdatedAt() time.Time       { return c.updatedAt }
func (c *Complaint) ResolvedAt() *time.Time     { return c.resolvedAt }
func (c *Complaint) ClosedAt() *time.Time       { return c.closedAt }

func (c *Complaint) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("complaint ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("complaint ID cannot be zero")
	}
	c.id = id
	return nil
}

// ResponseDueAt is the SLA deadline derived from the priority.
func (c *Complaint) ResponseDueAt() time.Time {
	return c.createdAt.Add(c.priority.SLA())
}

func (c *Complaint) IsClient(userID uint) bool {
	return userID != 0 && c.clientID == userID
}

func (c *Complaint) IsAssignee(userID uint) bool {
	return userID != 0 && c.assigneeID != nil && *c.assigneeID == userID
}

// RelationsOf lists the relations userID holds on the complaint.
func (c *Complaint) RelationsOf(userID uint) []string {
	var relations []string
	if c.IsClient(userID) {
		relations = append(relations, RelationClient)
	}
	if c.IsAssignee(userID) {
		relations = append(relations, RelationAssignee)
	}
	return relations
}

// TransitionTo moves the complaint to newStatus at the given instant. The
// instant is shared with the history row written for the change.
func (c *Complaint) TransitionTo(newStatus vo.ComplaintStatus, at time.Time) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, newStatus)
	}
	if c.status.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, c.status)
	}
	if !c.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, c.status, newStatus)
	}

	c.status = newStatus
	c.updatedAt = at
	c.version++

	switch newStatus {
	case vo.StatusResolved:
		c.resolvedAt = &at
	case vo.StatusClosed, vo.StatusWithdrawn:
		c.closedAt = &at
	}

	return nil
}

// AssignTo sets or clears (nil) the assignee. Status is left unchanged.
func (c *Complaint) AssignTo(assigneeID *uint, at time.Time) error {
	if c.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, c.status)
	}
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	if assigneeID != nil {
		v := *assigneeID
		c.assigneeID = &v
	} else {
		c.assigneeID = nil
	}
	c.updatedAt = at
	c.version++
	return nil
}

// Touch marks activity on an open complaint without changing its state or
// version, so a concurrent write still wins the version check against it.
func (c *Complaint) Touch(at time.Time) error {
	if err := c.EnsureOpen(); err != nil {
		return err
	}
	c.updatedAt = at
	return nil
}

// EnsureOpen fails with ErrTerminalState for CLOSED and WITHDRAWN complaints.
func (c *Complaint) EnsureOpen() error {
	if c.status.IsTerminal() {
		return fmt.Errorf("%w: %s", ErrTerminalState, c.status)
	}
	return nil
}
