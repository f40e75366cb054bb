package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/orris-inc/complaintdesk/internal/domain/notification"
	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
)

// memoryNotificationRepository enforces the unique dedupe key like the
// database index does.
type memoryNotificationRepository struct {
	mu         sync.Mutex
	byKey      map[string]*notification.Notification
	order      []*notification.Notification
	CreateFunc func(n *notification.Notification) error
}

func newMemoryNotificationRepository() *memoryNotificationRepository {
	return &memoryNotificationRepository{byKey: make(map[string]*notification.Notification)}
}

func (m *memoryNotificationRepository) CreateIfAbsent(ctx context.Context, n *notification.Notification) (bool, error) {
	if m.CreateFunc != nil {
		if err := m.CreateFunc(n); err != nil {
			return false, err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byKey[n.DedupeKey()]; ok {
		return false, nil
	}
	_ = n.SetID(uint(len(m.order) + 1))
	m.byKey[n.DedupeKey()] = n
	m.order = append(m.order, n)
	return true, nil
}

func (m *memoryNotificationRepository) GetByID(ctx context.Context, id uint) (*notification.Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if id == 0 || int(id) > len(m.order) {
		return nil, notification.ErrNotificationNotFound
	}
	return m.order[id-1], nil
}

func (m *memoryNotificationRepository) List(ctx context.Context, f notification.ListFilter) ([]*notification.Notification, int64, error) {
	return nil, 0, nil
}

func (m *memoryNotificationRepository) MarkRead(ctx context.Context, id uint) error {
	return nil
}

func (m *memoryNotificationRepository) recipients() []uint {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint, 0, len(m.order))
	for _, n := range m.order {
		out = append(out, n.UserID())
	}
	return out
}

type mockUserRepository struct {
	users map[uint]*user.User
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, user.ErrUserNotFound
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role user.Role) ([]*user.User, error) {
	var out []*user.User
	for id := uint(1); id <= 100; id++ {
		if u, ok := m.users[id]; ok && u.Role() == role {
			out = append(out, u)
		}
	}
	return out, nil
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

type mockTeamRepository struct {
	members map[uint][]*team.Member
}

func (m *mockTeamRepository) Create(ctx context.Context, t *team.Team) error { return nil }
func (m *mockTeamRepository) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	return nil, team.ErrTeamNotFound
}
func (m *mockTeamRepository) AddMember(ctx context.Context, mem *team.Member) error { return nil }
func (m *mockTeamRepository) GetMember(ctx context.Context, teamID, userID uint) (*team.Member, error) {
	return nil, team.ErrMemberNotFound
}
func (m *mockTeamRepository) RemoveMember(ctx context.Context, teamID, userID uint) error { return nil }
func (m *mockTeamRepository) ListMembers(ctx context.Context, teamID uint) ([]*team.Member, error) {
	return m.members[teamID], nil
}

type mockEmailNotifier struct {
	SendFunc func(to *user.User) error
	sent     []string
}

func (m *mockEmailNotifier) SendNotification(ctx context.Context, to *user.User, subject, body string) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, to.Email())
	return nil
}

func mustUser(id uint, role user.Role) *user.User {
	u, err := user.ReconstructUser(id, fmt.Sprintf("user%d", id), fmt.Sprintf("user%d@example.com", id), role, time.Now())
	if err != nil {
		panic(err)
	}
	return u
}
