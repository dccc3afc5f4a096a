// server/internal/models/user.go
package models

// User is the account record asserted by the external auth service.
// It is never created locally, only decoded from the service's responses.
type User struct {
	ID                  int     `json:"id"`
	Username            string  `json:"username"`
	Email               string  `json:"email"`
	FirstName           string  `json:"first_name"`
	LastName            string  `json:"last_name"`
	Phone               string  `json:"phone"`
	Address             string  `json:"address"`
	UserType            string  `json:"user_type"` // household, wastepicker, admin
	Points              int     `json:"points"`
	TotalRecycledWeight float64 `json:"total_recycled_weight"`
}

// DisplayName prefers the first name, falling back to the username.
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	return u.Username
}
