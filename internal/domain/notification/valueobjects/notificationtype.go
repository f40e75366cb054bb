package valueobjects

import "fmt"

type NotificationType string

const (
	NotificationTypeComplaintSubmitted NotificationType = "COMPLAINT_SUBMITTED"
	NotificationTypeStatusUpdated      NotificationType = "STATUS_UPDATED"
	NotificationTypeNewResponse        NotificationType = "NEW_RESPONSE"
	NotificationTypeAssigned           NotificationType = "ASSIGNED"
	NotificationTypeResolved           NotificationType = "RESOLVED"
	NotificationTypeTeamAdded          NotificationType = "TEAM_ADDED"
	NotificationTypeTeamRemoved        NotificationType = "TEAM_REMOVED"
)

var validNotificationTypes = map[NotificationType]bool{
	NotificationTypeComplaintSubmitted: true,
	NotificationTypeStatusUpdated:      true,
	NotificationTypeNewResponse:        true,
	NotificationTypeAssigned:           true,
	NotificationTypeResolved:           true,
	NotificationTypeTeamAdded:          true,
	NotificationTypeTeamRemoved:        true,
}

func (t NotificationType) String() string {
	return string(t)
}

func (t NotificationType) IsValid() bool {
	return validNotificationTypes[t]
}

func (t NotificationType) IsTeamEvent() bool {
	return t == NotificationTypeTeamAdded || t == NotificationTypeTeamRemoved
}

func NewNotificationType(s string) (NotificationType, error) {
	t := NotificationType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid notification type: %s", s)
	}
	return t, nil
}
