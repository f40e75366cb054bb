package permission

import (
	"fmt"

	"github.com/orris-inc/complaintdesk/internal/domain/permission"
	"github.com/orris-inc/complaintdesk/internal/shared/logger"
)

// InitDefaultPolicies adds any built-in grant missing from the store.
// Operator-added rules are left untouched.
func InitDefaultPolicies(e permission.PermissionEnforcer, log logger.Interface) error {
	policies := permission.DefaultPolicies()
	for _, p := range policies {
		if err := e.AddPolicy(p.Subject, p.Resource.String(), p.Action.String()); err != nil {
			log.Errorw("failed to add default policy",
				"error", err,
				"subject", p.Subject,
				"resource", p.Resource,
				"action", p.Action)
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				p.Subject, p.Resource, p.Action, err)
		}
	}

	log.Infow("default permissions initialized", "policies", len(policies))
	return nil
}
