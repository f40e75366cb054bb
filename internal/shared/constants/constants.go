package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Gin context keys set by the auth and logging middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	ErrMsgInternalServerError = "Internal server error occurred"
)

// Table names
const (
	TableUsers            = "users"
	TableProjects         = "projects"
	TableTeams            = "teams"
	TableTeamMembers      = "team_members"
	TableComplaints       = "complaints"
	TableComplaintHistory = "complaint_history"
	TableResponses        = "responses"
	TableAttachments      = "attachments"
	TableNotifications    = "notifications"
	TableActivityLogs     = "activity_logs"
	TableOutboxEvents     = "outbox_events"
)
