package usecases

import (
	"context"
	"errors"

	"github.com/orris-inc/complaintdesk/internal/domain/activity"
	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
)

type mockTeamRepository struct {
	teams   map[uint]*team.Team
	members map[[2]uint]*team.Member
	nextID  uint

	AddMemberFunc func(ctx context.Context, m *team.Member) error
}

func newMockTeamRepository(teams ...*team.Team) *mockTeamRepository {
	r := &mockTeamRepository{teams: make(map[uint]*team.Team), members: make(map[[2]uint]*team.Member)}
	for _, t := range teams {
		r.teams[t.ID()] = t
	}
	return r
}

func (m *mockTeamRepository) Create(ctx context.Context, t *team.Team) error { return nil }

func (m *mockTeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	if t, ok := m.teams[id]; ok {
		return t, nil
	}
	return nil, team.ErrTeamNotFound
}

func (m *mockTeamRepository) AddMember(ctx context.Context, mem *team.Member) error {
	if m.AddMemberFunc != nil {
		return m.AddMemberFunc(ctx, mem)
	}
	key := [2]uint{mem.TeamID(), mem.UserID()}
	if _, ok := m.members[key]; ok {
		return team.ErrDuplicateMember
	}
	m.nextID++
	if err := mem.SetID(m.nextID); err != nil {
		return err
	}
	m.members[key] = mem
	return nil
}

func (m *mockTeamRepository) GetMember(ctx context.Context, teamID, userID uint) (*team.Member, error) {
	if mem, ok := m.members[[2]uint{teamID, userID}]; ok {
		return mem, nil
	}
	return nil, team.ErrMemberNotFound
}

func (m *mockTeamRepository) RemoveMember(ctx context.Context, teamID, userID uint) error {
	key := [2]uint{teamID, userID}
	if _, ok := m.members[key]; !ok {
		return team.ErrMemberNotFound
	}
	delete(m.members, key)
	return nil
}

func (m *mockTeamRepository) ListMembers(ctx context.Context, teamID uint) ([]*team.Member, error) {
	var out []*team.Member
	for key, mem := range m.members {
		if key[0] == teamID {
			out = append(out, mem)
		}
	}
	return out, nil
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

func (e *policyEnforcer) AddPolicy(sub, res, act string) error    { return nil }
func (e *policyEnforcer) RemovePolicy(sub, res, act string) error { return nil }
func (e *policyEnforcer) LoadPolicy() error                       { return nil }

// passthroughTx has no rollback; the membership tests assert on what was reached.
type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type recordingRecorder struct {
	actions []activity.Action
	err     error
}

func (r *recordingRecorder) Record(ctx context.Context, userID uint, action activity.Action, entityID uint, details map[string]any) error {
	if r.err != nil {
		return r.err
	}
	r.actions = append(r.actions, action)
	return nil
}

type recordingOutbox struct {
	events   []*events.Event
	notified int
}

func (o *recordingOutbox) Append(ctx context.Context, evts ...*events.Event) error {
	o.events = append(o.events, evts...)
	return nil
}

func (o *recordingOutbox) Notify() { o.notified++ }

var errStorage = errors.New("storage unavailable")
