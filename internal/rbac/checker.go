package rbac

import "fmt"

// Checker answers role-hierarchy questions from a validated Config. It is
// the single source of truth for privilege comparisons; handlers never
// compare role strings directly.
type Checker struct {
	config    Config
	roleIndex map[Role]int
}

// New creates a Checker from a validated Config
func New(cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rc := &Checker{
		config:    cfg,
		roleIndex: make(map[Role]int, len(cfg.Roles)),
	}
	for _, rd := range cfg.Roles {
		rc.roleIndex[rd.Name] = rd.Level
	}
	return rc, nil
}

// MustNew creates a Checker and panics on invalid config
func MustNew(cfg Config) *Checker {
	rc, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf(errMustNewPanicFmt, err))
	}
	return rc
}

// Level maps a role to its numeric rank. Unknown roles rank 0 and can
// never satisfy a threshold.
func (rc *Checker) Level(role Role) int {
	return rc.roleIndex[role]
}

// AtLeast reports whether role meets the required threshold.
func (rc *Checker) AtLeast(role, required Role) bool {
	requiredLevel, ok := rc.roleIndex[required]
	if !ok {
		// An unknown threshold cannot be satisfied; deny rather than
		// treat it as zero.
		return false
	}
	return rc.Level(role) >= requiredLevel
}

// CanManage reports whether the actor may create, edit, or delete the
// target account. The actor must rank at or above the target, and a
// principal's management operations never target its own record.
func (rc *Checker) CanManage(actorRole Role, actorID int64, targetRole Role, targetID int64) bool {
	if actorID == targetID {
		return false
	}
	actorLevel := rc.Level(actorRole)
	if actorLevel == 0 {
		return false
	}
	return actorLevel >= rc.Level(targetRole)
}

// ValidateRole validates a role string against the configured hierarchy
func (rc *Checker) ValidateRole(role string) (Role, error) {
	r := Role(role)
	if _, ok := rc.roleIndex[r]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidRole, role)
}
