package valueobjects

import "fmt"

type Action string

const (
	ActionRead          Action = "read"
	ActionAssign        Action = "assign"
	ActionRespond       Action = "respond"
	ActionManageMembers Action = "manage_members"
)

// transitionPrefix namespaces per-target transition actions, e.g. "transition:RESOLVED".
const transitionPrefix = "transition:"

// TransitionAction is the action checked for moving a complaint to target.
func TransitionAction(target string) Action {
	return Action(transitionPrefix + target)
}

func NewAction(action string) (Action, error) {
	if action == "" {
		return "", fmt.Errorf("action cannot be empty")
	}
	return Action(action), nil
}

func (a Action) String() string {
	return string(a)
}
