package models

// All lists every model in dependency order, for AutoMigrate in tests and
// for schema bootstrap on SQLite.
func All() []any {
	return []any{
		&UserModel{},
		&TeamModel{},
		&TeamMemberModel{},
		&ProjectModel{},
		&ComplaintModel{},
		&ComplaintHistoryModel{},
		&ResponseModel{},
		&AttachmentModel{},
		&NotificationModel{},
		&ActivityLogModel{},
		&OutboxEventModel{},
	}
}
