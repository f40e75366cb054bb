package team

import (
	"fmt"
	"strings"
	"time"

	"github.com/orris-inc/complaintdesk/internal/shared/biztime"
)

type Team struct {
	id        uint
	name      string
	createdAt time.Time
}

func NewTeam(name string) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("team name is required")
	}
	return &Team{name: name, createdAt: biztime.NowUTC()}, nil
}

func ReconstructTeam(id uint, name string, createdAt time.Time) *Team {
	return &Team{id: id, name: name, createdAt: createdAt}
}

func (t *Team) ID() uint             { return t.id }
func (t *Team) Name() string         { return t.name }
func (t *Team) CreatedAt() time.Time { return t.createdAt }

func (t *Team) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("team ID is already set")
	}
	t.id = id
	return nil
}
