package notification

import (
	"fmt"
	"strings"

	vo "github.com/orris-inc/complaintdesk/internal/domain/notification/valueobjects"
	"github.com/orris-inc/complaintdesk/internal/domain/shared/events"
)

// content is what one event turns into for every recipient.
type content struct {
	notificationType vo.NotificationType
	message          string
	body             string
	metadata         map[string]any
}

func humanStatus(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}

func buildContent(evt *events.Event) (*content, error) {
	t, err := vo.NewNotificationType(evt.EventType)
	if err != nil {
		return nil, err
	}

	c := &content{
		notificationType: t,
		metadata:         map[string]any{"event_id": evt.EventID},
	}

	switch {
	case evt.Complaint != nil:
		ref := evt.Complaint
		c.metadata["complaint_id"] = ref.ID
		c.metadata["project_id"] = ref.ProjectID

		switch evt.EventType {
		case events.TypeComplaintSubmitted:
			c.message = fmt.Sprintf("New complaint #%d: %s", ref.ID, ref.Title)
		case events.TypeStatusUpdated:
			c.message = fmt.Sprintf("Complaint #%d moved from %s to %s", ref.ID, humanStatus(ref.FromStatus), humanStatus(ref.ToStatus))
			c.metadata["from_status"] = ref.FromStatus
			c.metadata["to_status"] = ref.ToStatus
		case events.TypeResolved:
			c.message = fmt.Sprintf("Complaint #%d has been resolved", ref.ID)
			c.metadata["from_status"] = ref.FromStatus
			c.metadata["to_status"] = ref.ToStatus
		case events.TypeNewResponse:
			c.message = fmt.Sprintf("New response on complaint #%d: %s", ref.ID, ref.Title)
			c.metadata["response_id"] = ref.ResponseID
		case events.TypeAssigned:
			c.message = fmt.Sprintf("You have been assigned complaint #%d: %s", ref.ID, ref.Title)
		default:
			return nil, fmt.Errorf("event type %s carries no complaint content", evt.EventType)
		}
	case evt.Team != nil:
		ref := evt.Team
		c.metadata["team_id"] = ref.TeamID

		switch evt.EventType {
		case events.TypeTeamAdded:
			c.message = fmt.Sprintf("You were added to team %s", ref.TeamName)
		case events.TypeTeamRemoved:
			c.message = fmt.Sprintf("You were removed from team %s", ref.TeamName)
		default:
			return nil, fmt.Errorf("event type %s carries no team content", evt.EventType)
		}
	default:
		return nil, fmt.Errorf("event %s has no subject", evt.EventID)
	}

	var body strings.Builder
	body.WriteString("**" + c.message + "**\n")
	if evt.Message != "" {
		body.WriteString("\n> " + strings.ReplaceAll(evt.Message, "\n", "\n> ") + "\n")
	}
	c.body = body.String()
	return c, nil
}
