package mappers

import (
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/project"
	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/domain/user"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
)

func UserToEntity(m *models.UserModel) (*user.User, error) {
	u, err := user.ReconstructUser(m.ID, m.Name, m.Email, user.Role(m.Role), m.CreatedAt.UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user %d: %w", m.ID, err)
	}
	return u, nil
}

func UsersToEntities(rows []*models.UserModel) ([]*user.User, error) {
	out := make([]*user.User, 0, len(rows))
	for _, m := range rows {
		u, err := UserToEntity(m)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, nil
}

func UserToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}

func ProjectToEntity(m *models.ProjectModel) *project.Project {
	return project.ReconstructProject(m.ID, m.Name, m.TeamID, m.CreatedAt.UTC())
}

func ProjectToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{ID: p.ID(), Name: p.Name(), TeamID: p.TeamID(), CreatedAt: p.CreatedAt()}
}

func TeamToEntity(m *models.TeamModel) *team.Team {
	return team.ReconstructTeam(m.ID, m.Name, m.CreatedAt.UTC())
}

func TeamToModel(t *team.Team) *models.TeamModel {
	return &models.TeamModel{ID: t.ID(), Name: t.Name(), CreatedAt: t.CreatedAt()}
}

func MemberToEntity(m *models.TeamMemberModel) *team.Member {
	return team.ReconstructMember(m.ID, m.TeamID, m.UserID, m.Role, m.CreatedAt.UTC())
}

func MemberToModel(m *team.Member) *models.TeamMemberModel {
	return &models.TeamMemberModel{
		ID:        m.ID(),
		TeamID:    m.TeamID(),
		UserID:    m.UserID(),
		Role:      m.Role(),
		CreatedAt: m.CreatedAt(),
	}
}
