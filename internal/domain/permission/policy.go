package permission

import (
	vo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
)

// Policy is one (subject, resource, action) grant.
type Policy struct {
	Subject  string
	Resource vo.Resource
	Action   vo.Action
}

const (
	roleAdmin   = "ADMIN"
	roleSupport = "SUPPORT"

	relationClient   = "client"
	relationAssignee = "assignee"
)

var forwardTargets = []string{"IN_PROGRESS", "RESOLVED", "CLOSED"}

// DefaultPolicies is the built-in authorization matrix:
//   - the client may withdraw, read and respond
//   - the assignee, SUPPORT and ADMIN may move a complaint forward
//   - ADMIN may also withdraw on the client's behalf
//   - only staff assign; only ADMIN manages team membership
func DefaultPolicies() []Policy {
	client := RelationSubject(relationClient)
	assignee := RelationSubject(relationAssignee)
	admin := RoleSubject(roleAdmin)
	support := RoleSubject(roleSupport)

	policies := []Policy{
		{client, vo.ResourceComplaint, vo.TransitionAction("WITHDRAWN")},
		{admin, vo.ResourceComplaint, vo.TransitionAction("WITHDRAWN")},
		{admin, vo.ResourceComplaint, vo.ActionAssign},
		{support, vo.ResourceComplaint, vo.ActionAssign},
		{admin, vo.ResourceTeam, vo.ActionManageMembers},
	}
	for _, sub := range []string{assignee, admin, support} {
		for _, target := range forwardTargets {
			policies = append(policies, Policy{sub, vo.ResourceComplaint, vo.TransitionAction(target)})
		}
	}
	for _, sub := range []string{client, assignee, admin, support} {
		policies = append(policies,
			Policy{sub, vo.ResourceComplaint, vo.ActionRead},
			Policy{sub, vo.ResourceComplaint, vo.ActionRespond},
		)
	}
	return policies
}
