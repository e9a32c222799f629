package models

import "time"

// Breach alert severities.
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// BreachAlert records that a stored credential or the account email was
// found in a known breach.
type BreachAlert struct {
	AlertID     int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Platform    string    `json:"platform"`
	Description string    `json:"description"`
	Severity    string    `json:"severity"`
	BreachDate  time.Time `json:"breach_date"`
	IsResolved  bool      `json:"is_resolved"`
	CreatedAt   time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the BreachAlert model.
func (b BreachAlert) TableName() string {
	return "breach_alerts"
}

// BreachDescriptor is one entry of the breached-account API response.
type BreachDescriptor struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	Domain      string   `json:"Domain"`
	BreachDate  string   `json:"BreachDate"`
	AddedDate   string   `json:"AddedDate"`
	PwnCount    int64    `json:"PwnCount"`
	Description string   `json:"Description"`
	DataClasses []string `json:"DataClasses"`
	IsVerified  bool     `json:"IsVerified"`
	IsSensitive bool     `json:"IsSensitive"`
}

// BreachStatus is the outcome of a single password check. Unavailable is
// never to be read as Clean.
type BreachStatus string

const (
	BreachStatusBreached    BreachStatus = "breached"
	BreachStatusClean       BreachStatus = "clean"
	BreachStatusUnavailable BreachStatus = "unavailable"
)

// InconclusiveCheck names a stored credential that could not be checked.
type InconclusiveCheck struct {
	Kind   string `json:"kind"`
	ID     int64  `json:"id"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// PasswordCheckReport is the result of checking every stored credential.
type PasswordCheckReport struct {
	Checked      int                 `json:"checked"`
	Alerts       []BreachAlert       `json:"alerts"`
	Inconclusive []InconclusiveCheck `json:"inconclusive"`
}

// CheckPasswordRequest is the body of POST /breach/check-password.
type CheckPasswordRequest struct {
	Password string `json:"password"`
}

// CheckPasswordResponse is the tri-state answer to a single check.
type CheckPasswordResponse struct {
	Status BreachStatus `json:"status"`
}

// AlertFilter selects breach alerts of a user.
type AlertFilter struct {
	UserID   int64
	Resolved *bool
	Page     Page
}
