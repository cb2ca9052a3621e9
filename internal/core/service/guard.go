package service

import "github.com/dealerhub/dealer-portal/internal/core/domain"

// Decision is the terminal outcome of evaluating one navigation attempt.
type Decision int

const (
	// DecisionPending means the session state has not been resolved yet.
	// The caller must render a neutral placeholder, never redirect.
	DecisionPending Decision = iota
	DecisionDeniedUnauthenticated
	DecisionDeniedWrongRole
	DecisionAllowed
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionDeniedUnauthenticated:
		return "denied_unauthenticated"
	case DecisionDeniedWrongRole:
		return "denied_wrong_role"
	case DecisionAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// Decide evaluates a navigation attempt against the session state. It is a
// pure function of {initializing, authenticated, role, required}: evaluating
// the same route twice with the same state always yields the same decision.
//
// required == domain.RoleUnknown means the route only requires authentication.
// An authenticated session whose own role is RoleUnknown therefore reaches
// role-neutral routes but is denied every role-gated one.
func Decide(state domain.SessionState, required domain.Role) Decision {
	if state.Initializing {
		return DecisionPending
	}
	if !state.Authenticated {
		return DecisionDeniedUnauthenticated
	}
	if required != domain.RoleUnknown && state.Role != required {
		return DecisionDeniedWrongRole
	}
	return DecisionAllowed
}
