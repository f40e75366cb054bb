package usecases

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/complaint"
	vo "github.com/orris-inc/complaintdesk/internal/domain/complaint/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/response"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
)

// memStore is an in-memory unit of work. Transactions are serialized and a
// failed one restores the state it started from.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	nextID      uint
	complaints  map[uint]*complaint.Complaint
	history     []*complaint.History
	responses   []*response.Response
	attachments []*response.Attachment
	activity    []*activity.Log
	outbox      []*events.Event

	// failActivity makes the recorder fail for that action.
	failActivity activity.Action
	failOutbox   bool
	notified     int
}

func newMemStore() *memStore {
	return &memStore{nextID: 100, complaints: make(map[uint]*complaint.Complaint)}
}

func cloneComplaint(c *complaint.Complaint) *complaint.Complaint {
	var assignee *uint
	if c.AssigneeID() != nil {
		v := *c.AssigneeID()
		assignee = &v
	}
	out, err := complaint.ReconstructComplaint(c.ID(), c.Title(), c.Description(), c.Category(), c.Status(), c.Priority(),
		c.ClientID(), assignee, c.ProjectID(), c.Version(), c.CreatedAt(), c.UpdatedAt(), c.ResolvedAt(), c.ClosedAt())
	if err != nil {
		panic(err)
	}
	return out
}

type memSnapshot struct {
	nextID      uint
	complaints  map[uint]*complaint.Complaint
	history     []*complaint.History
	responses   []*response.Response
	attachments []*response.Attachment
	activity    []*activity.Log
	outbox      []*events.Event
}

func (s *memStore) snapshot() memSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := memSnapshot{
		nextID:      s.nextID,
		complaints:  make(map[uint]*complaint.Complaint, len(s.complaints)),
		history:     append([]*complaint.History(nil), s.history...),
		responses:   append([]*response.Response(nil), s.responses...),
		attachments: append([]*response.Attachment(nil), s.attachments...),
		activity:    append([]*activity.Log(nil), s.activity...),
		outbox:      append([]*events.Event(nil), s.outbox...),
	}
	for id, c := range s.complaints {
		snap.complaints[id] = c
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID = snap.nextID
	s.complaints = snap.complaints
	s.history = snap.history
	s.responses = snap.responses
	s.attachments = snap.attachments
	s.activity = snap.activity
	s.outbox = snap.outbox
}

func (s *memStore) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fn(ctx); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

// seed stores c as-is, bypassing the transactor.
func (s *memStore) seed(c *complaint.Complaint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.complaints[c.ID()] = cloneComplaint(c)
}

func (s *memStore) stored(id uint) *complaint.Complaint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneComplaint(s.complaints[id])
}

func (s *memStore) historyOf(id uint) []*complaint.History {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*complaint.History
	for _, h := range s.history {
		if h.ComplaintID() == id {
			out = append(out, h)
		}
	}
	return out
}

func (s *memStore) events() []*events.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*events.Event(nil), s.outbox...)
}

func (s *memStore) actions() []activity.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]activity.Action, 0, len(s.activity))
	for _, l := range s.activity {
		out = append(out, l.Action())
	}
	return out
}

// complaint repository

type memComplaintRepository struct {
	s *memStore
	// GetByIDFunc overrides the lookup, e.g. to hand out a stale snapshot.
	GetByIDFunc func(ctx context.Context, id uint) (*complaint.Complaint, error)
}

func (r *memComplaintRepository) Create(ctx context.Context, c *complaint.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := c.SetID(r.s.id()); err != nil {
		return err
	}
	r.s.complaints[c.ID()] = cloneComplaint(c)
	return nil
}

func (r *memComplaintRepository) GetByID(ctx context.Context, id uint) (*complaint.Complaint, error) {
	if r.GetByIDFunc != nil {
		return r.GetByIDFunc(ctx, id)
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.complaints[id]
	if !ok {
		return nil, complaint.ErrComplaintNotFound
	}
	return cloneComplaint(c), nil
}

func (r *memComplaintRepository) CompareAndSwap(ctx context.Context, c *complaint.Complaint, expectedVersion int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.complaints[c.ID()]
	if !ok || current.Version() != expectedVersion {
		return complaint.ErrStatusConflict
	}
	r.s.complaints[c.ID()] = cloneComplaint(c)
	return nil
}

type memHistoryRepository struct{ s *memStore }

func (r *memHistoryRepository) Append(ctx context.Context, h *complaint.History) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := h.SetID(r.s.id()); err != nil {
		return err
	}
	r.s.history = append(r.s.history, h)
	return nil
}

func (r *memHistoryRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*complaint.History, error) {
	rows := r.s.historyOf(complaintID)
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].CreatedAt().Equal(rows[j].CreatedAt()) {
			return rows[i].CreatedAt().Before(rows[j].CreatedAt())
		}
		return rows[i].ID() < rows[j].ID()
	})
	return rows, nil
}

func (r *memHistoryRepository) Latest(ctx context.Context, complaintID uint) (*complaint.History, error) {
	rows, _ := r.ListByComplaint(ctx, complaintID)
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[len(rows)-1], nil
}

type memResponseRepository struct{ s *memStore }

func (r *memResponseRepository) Create(ctx context.Context, resp *response.Response) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := resp.SetID(r.s.id()); err != nil {
		return err
	}
	r.s.responses = append(r.s.responses, resp)
	return nil
}

func (r *memResponseRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*response.Response, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*response.Response
	for _, resp := range r.s.responses {
		if resp.ComplaintID() == complaintID {
			out = append(out, resp)
		}
	}
	return out, nil
}

type memAttachmentRepository struct{ s *memStore }

func (r *memAttachmentRepository) Create(ctx context.Context, a *response.Attachment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if err := a.SetID(r.s.id()); err != nil {
		return err
	}
	r.s.attachments = append(r.s.attachments, a)
	return nil
}

func (r *memAttachmentRepository) ListByComplaint(ctx context.Context, complaintID uint) ([]*response.Attachment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*response.Attachment
	for _, a := range r.s.attachments {
		if a.ComplaintID() != nil && *a.ComplaintID() == complaintID {
			out = append(out, a)
		}
	}
	return out, nil
}

type memRecorder struct{ s *memStore }

func (r *memRecorder) Record(ctx context.Context, userID uint, action activity.Action, entityID uint, details map[string]any) error {
	if r.s.failActivity == action {
		return errors.New("activity log unavailable")
	}
	l, err := activity.NewLog(userID, action, entityID, details)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.activity = append(r.s.activity, l)
	return nil
}

type memOutbox struct{ s *memStore }

func (o *memOutbox) Append(ctx context.Context, evts ...*events.Event) error {
	if o.s.failOutbox {
		return errors.New("outbox unavailable")
	}
	o.s.mu.Lock()
	defer o.s.mu.Unlock()
	o.s.outbox = append(o.s.outbox, evts...)
	return nil
}

func (o *memOutbox) Notify() {
	o.s.mu.Lock()
	o.s.notified++
	o.s.mu.Unlock()
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	return nil, nil
}

type mockProjectRepository struct {
	projects map[uint]*project.Project
}

func (m *mockProjectRepository) Create(ctx context.Context, p *project.Project) error { return nil }

func (m *mockProjectRepository) GetByID(ctx context.Context, id uint) (*project.Project, error) {
	if p, ok := m.projects[id]; ok {
		return p, nil
	}
	return nil, project.ErrProjectNotFound
}

// policyEnforcer answers from the default policy set.
type policyEnforcer struct {
	grants map[[3]string]bool
}

func newPolicyEnforcer() *policyEnforcer {
	e := &policyEnforcer{grants: make(map[[3]string]bool)}
	for _, p := range permission.DefaultPolicies() {
		e.grants[[3]string{p.Subject, p.Resource.String(), p.Action.String()}] = true
	}
	return e
}

func (e *policyEnforcer) Enforce(sub, res, act string) (bool, error) {
	return e.grants[[3]string{sub, res, act}], nil
}

func (e *policyEnforcer) AddPolicy(sub, res, act string) error {
	e.grants[[3]string{sub, res, act}] = true
	return nil
}

func (e *policyEnforcer) RemovePolicy(sub, res, act string) error {
	delete(e.grants, [3]string{sub, res, act})
	return nil
}

func (e *policyEnforcer) LoadPolicy() error { return nil }

// stripSanitizer drops anything between angle brackets.
type stripSanitizer struct{}

func (stripSanitizer) ToHTMLSanitized(md string) (string, error) { return md, nil }

func (stripSanitizer) StripTags(input string) string {
	var out []rune
	depth := 0
	for _, r := range input {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			out = append(out, r)
		}
	}
	return string(out)
}

func at(minutes int) time.Time {
	return time.Date(2026, 4, 1, 9, minutes, 0, 0, time.UTC)
}

const (
	clientID      uint = 1
	adminID       uint = 2
	supportID     uint = 3
	otherStaffID  uint = 4
	otherClientID uint = 5
	projectID     uint = 7
	complaintID   uint = 10
)

type fixture struct {
	store       *memStore
	complaints  *memComplaintRepository
	history     *memHistoryRepository
	responses   *memResponseRepository
	attachments *memAttachmentRepository
	users       *mockUserRepository
	projects    *mockProjectRepository
	enforcer    *policyEnforcer
	recorder    *memRecorder
	outbox      *memOutbox
}

func mustUser(id uint, role user.Role) *user.User {
	u, err := user.ReconstructUser(id, "user", "user@example.com", role, at(0))
	if err != nil {
		panic(err)
	}
	return u
}

func newFixture() *fixture {
	s := newMemStore()
	f := &fixture{
		store:       s,
		complaints:  &memComplaintRepository{s: s},
		history:     &memHistoryRepository{s: s},
		responses:   &memResponseRepository{s: s},
		attachments: &memAttachmentRepository{s: s},
		users: &mockUserRepository{users: map[uint]*user.User{
			clientID:      mustUser(clientID, user.RoleClient),
			adminID:       mustUser(adminID, user.RoleAdmin),
			supportID:     mustUser(supportID, user.RoleSupport),
			otherStaffID:  mustUser(otherStaffID, user.RoleSupport),
			otherClientID: mustUser(otherClientID, user.RoleClient),
		}},
		projects: &mockProjectRepository{projects: map[uint]*project.Project{
			projectID: project.ReconstructProject(projectID, "Storefront", nil, at(0)),
		}},
		enforcer: newPolicyEnforcer(),
		recorder: &memRecorder{s: s},
		outbox:   &memOutbox{s: s},
	}
	return f
}

// seedComplaint stores complaint 10 in the given status, filed by clientID.
// Reseeding bumps the version, as a committed write would.
func (f *fixture) seedComplaint(status vo.ComplaintStatus, assigneeID *uint) *complaint.Complaint {
	version := 1
	f.store.mu.Lock()
	if prev, ok := f.store.complaints[complaintID]; ok {
		version = prev.Version() + 1
	}
	f.store.mu.Unlock()

	c, err := complaint.ReconstructComplaint(complaintID, "Checkout broken", "The pay button does nothing",
		vo.CategoryBug, status, vo.PriorityHigh, clientID, assigneeID, projectID, version, at(0), at(0), nil, nil)
	if err != nil {
		panic(err)
	}
	f.store.seed(c)
	return c
}
