package user

type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleStaff         Role = "staff"
)

// Credential is one row of the static login list from the seed document.
// Passwords are stored and compared as-is: the seed is the only credential
// source and hashing is explicitly out of scope for this system.
type Credential struct {
	ID       int
	Username string
	Password string
}

// Role reports the role implied by the credential. The seed document
// reserves id 1 for the administrator account.
func (c Credential) Role() Role {
	if c.ID == 1 {
		return RoleAdministrator
	}
	return RoleStaff
}

// Session is a Credential with the password stripped. It is what a login
// produces and what every authenticated request carries in its token claims.
type Session struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session returns the credential's session representation.
func (c Credential) Session() Session {
	return Session{
		ID:       c.ID,
		Username: c.Username,
		Role:     c.Role(),
	}
}
