package domain

// User is the account and entitlement record as computed by the backend.
// The client never edits it; every mutation replaces the whole snapshot
// with a fresh server record.
type User struct {
	ID               int64    `json:"id"`
	Email            string   `json:"email"`
	TrialDaysLeft    int      `json:"trial_days_left"`
	IsTrialActive    bool     `json:"is_trial_active"`
	ActivatedModules []string `json:"activated_modules"`
}

// CanAccessModule reports whether the user may enter a module. An active
// trial with days remaining unlocks every module; otherwise the module must
// have been activated with a sponsor code. Activated modules are never
// removed on the client.
func (u *User) CanAccessModule(module string) bool {
	if u == nil {
		return false
	}
	if u.IsTrialActive && u.TrialDaysLeft > 0 {
		return true
	}
	return u.HasActivated(module)
}

// HasActivated checks whether a sponsor code has unlocked the module.
func (u *User) HasActivated(module string) bool {
	if u == nil {
		return false
	}
	for _, m := range u.ActivatedModules {
		if m == module {
			return true
		}
	}
	return false
}

// TrialDaysRemaining returns the remaining trial days. Once the trial has
// been deactivated it returns 0 regardless of the stored counter.
func (u *User) TrialDaysRemaining() int {
	if u == nil || !u.IsTrialActive {
		return 0
	}
	return u.TrialDaysLeft
}
