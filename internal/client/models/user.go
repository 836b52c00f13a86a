package models

// RoleAdmin is the role value the backend assigns to administrators.
const RoleAdmin = "admin"

// User is the identity record owned by the session. The backend is
// authoritative; the client never edits it.
type User struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Role            string  `json:"role,omitempty"`
	EmailVerifiedAt *string `json:"email_verified_at"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// IsAdmin reports whether the backend marked the user as an administrator.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// UserSummary is the embedded owner of a travel request in admin listings.
type UserSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the body of /user/login and /admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of /user/register.
type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// AuthData is the data part of a successful login or registration.
type AuthData struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
