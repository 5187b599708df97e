package authservice

// Profile is the account profile returned by the auth service
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"` // admin or staff
}

// IsAdmin reports whether the profile may perform destructive operations
func (p *Profile) IsAdmin() bool {
	return p.Role == "admin"
}

// ErrorResponse is the error payload returned by the auth service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
