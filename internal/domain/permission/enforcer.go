// Package permission describes who may do what. Subjects are either a user
// role ("role:ADMIN") or a relation the user holds on the resource
// ("relation:client"); a request is allowed when any of its subjects is.
package permission

import (
	"fmt"

	vo "github.com/orris-inc/complaintdesk/internal/domain/permission/valueobjects"
)

type PermissionEnforcer interface {
	Enforce(subject string, resource string, action string) (bool, error)
	AddPolicy(subject string, resource string, action string) error
	RemovePolicy(subject string, resource string, action string) error
	LoadPolicy() error
}

func RoleSubject(role string) string {
	return "role:" + role
}

func RelationSubject(relation string) string {
	return "relation:" + relation
}

// Subjects builds the subject list for a user with the given role and relations.
func Subjects(role string, relations ...string) []string {
	subjects := make([]string, 0, len(relations)+1)
	subjects = append(subjects, RoleSubject(role))
	for _, r := range relations {
		subjects = append(subjects, RelationSubject(r))
	}
	return subjects
}

// Authorize reports whether any subject may perform action on resource.
func Authorize(e PermissionEnforcer, subjects []string, resource vo.Resource, action vo.Action) (bool, error) {
	for _, sub := range subjects {
		ok, err := e.Enforce(sub, resource.String(), action.String())
		if err != nil {
			return false, fmt.Errorf("failed to enforce %s on %s: %w", action, resource, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
