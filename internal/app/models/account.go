package models

// RoleType defines the account role
type RoleType string

const (
	RoleParent RoleType = "PARENT"
	RoleTutor  RoleType = "TUTOR"
	RoleAdmin  RoleType = "ADMIN"
)

// Account represents a parent, tutor or admin account. Tutor-specific
// profile fields stay empty for other roles.
type Account struct {
	Meta
	Email     string   `json:"email"`
	Password  string   `json:"password"` // bcrypt hash
	Role      RoleType `json:"role"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Phone     string   `json:"phone,omitempty"`

	// Tutor profile
	Subjects   []string `json:"subjects,omitempty"`
	HourlyRate float64  `json:"hourlyRate,omitempty"`
	Bio        string   `json:"bio,omitempty"`
}

// FullName returns the display name of the account holder.
func (a *Account) FullName() string {
	if a.LastName == "" {
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}
