package repository

import (
	"context"
	stderrors "errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/orris-inc/complaintdesk/internal/domain/team"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/mappers"
	"github.com/orris-inc/complaintdesk/internal/infrastructure/persistence/models"
	"github.com/orris-inc/complaintdesk/internal/shared/db"
	"github.com/orris-inc/complaintdesk/internal/shared/errors"
)

type TeamRepositoryImpl struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) team.Repository {
	return &TeamRepositoryImpl{db: db}
}

func (r *TeamRepositoryImpl) Create(ctx context.Context, t *team.Team) error {
	model := mappers.TeamToModel(t)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return t.SetID(model.ID)
}

func (r *TeamRepositoryImpl) GetByID(ctx context.Context, id uint) (*team.Team, error) {
	var model models.TeamModel
	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team by ID: %w", err)
	}
	return mappers.TeamToEntity(&model), nil
}

func (r *TeamRepositoryImpl) AddMember(ctx context.Context, m *team.Member) error {
	model := mappers.MemberToModel(m)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return team.ErrDuplicateMember
		}
		return fmt.Errorf("failed to add team member: %w", err)
	}
	return m.SetID(model.ID)
}

func (r *TeamRepositoryImpl) GetMember(ctx context.Context, teamID, userID uint) (*team.Member, error) {
	var model models.TeamMemberModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		First(&model).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, team.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get team member: %w", err)
	}
	return mappers.MemberToEntity(&model), nil
}

func (r *TeamRepositoryImpl) RemoveMember(ctx context.Context, teamID, userID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("team_id = ? AND user_id = ?", teamID, userID).
		Delete(&models.TeamMemberModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return team.ErrMemberNotFound
	}
	return nil
}

func (r *TeamRepositoryImpl) ListMembers(ctx context.Context, teamID uint) ([]*team.Member, error) {
	var rows []*models.TeamMemberModel
	if err := db.GetTxFromContext(ctx, r.db).Where("team_id = ?", teamID).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	out := make([]*team.Member, 0, len(rows))
	for _, m := range rows {
		out = append(out, mappers.MemberToEntity(m))
	}
	return out, nil
}
