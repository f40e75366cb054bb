package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

var ErrProjectNotFound = errors.New("project not found")

// Project groups complaints and optionally belongs to a team, whose staff
// members are told about new submissions.
type Project struct {
	id        uint
	name      string
	teamID    *uint
	createdAt time.Time
}

func NewProject(name string, teamID *uint) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	return &Project{name: name, teamID: teamID, createdAt: biztime.NowUTC()}, nil
}

func ReconstructProject(id uint, name string, teamID *uint, createdAt time.Time) *Project {
	return &Project{id: id, name: name, teamID: teamID, createdAt: createdAt}
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) TeamID() *uint        { return p.teamID }
func (p *Project) CreatedAt() time.Time { return p.createdAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	p.id = id
	return nil
}

type Repository interface {
	Create(ctx context.Context, p *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
}
