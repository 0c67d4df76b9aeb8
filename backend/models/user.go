package models

// UserPreferences holds the choices made during onboarding.
type UserPreferences struct {
	Year      string   `json:"year,omitempty"`
	Branch    string   `json:"branch,omitempty"`
	Languages []string `json:"languages"`
}

// UserRecord is one registered account. Credential carries the bcrypt hash
// inside the persisted user collection and is stripped from every session
// copy handed out of the session manager.
type UserRecord struct {
	ID                 string              `json:"id"`
	Email              string              `json:"email"`
	Credential         string              `json:"credential,omitempty"`
	Name               string              `json:"name,omitempty"`
	IsNewUser          bool                `json:"isNewUser"`
	Preferences        *UserPreferences    `json:"preferences,omitempty"`
	Progress           map[string]int      `json:"progress"`
	CompletedCourses   []string            `json:"completedCourses"`
	PerformanceHistory []PerformanceRecord `json:"performanceHistory"`
}

// Clone returns a deep copy so callers can never alias the manager's state.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Preferences != nil {
		prefs := *u.Preferences
		prefs.Languages = append([]string(nil), u.Preferences.Languages...)
		cp.Preferences = &prefs
	}
	cp.Progress = make(map[string]int, len(u.Progress))
	for k, v := range u.Progress {
		cp.Progress[k] = v
	}
	cp.CompletedCourses = append([]string(nil), u.CompletedCourses...)
	cp.PerformanceHistory = append([]PerformanceRecord(nil), u.PerformanceHistory...)
	return &cp
}

// Sanitized returns a deep copy with the credential removed.
func (u *UserRecord) Sanitized() *UserRecord {
	cp := u.Clone()
	if cp != nil {
		cp.Credential = ""
	}
	return cp
}

// HasCompleted reports whether the roadmap item is already in CompletedCourses.
func (u *UserRecord) HasCompleted(itemID string) bool {
	for _, id := range u.CompletedCourses {
		if id == itemID {
			return true
		}
	}
	return false
}
