package models

// Rôles renvoyés par l'API RetailEdge.
const (
	RoleAdmin    = "ROLE_ADMIN"
	RoleCustomer = "ROLE_CUSTOMER"
)

type User struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}

// HasRole indique si l'utilisateur porte le rôle donné.
func (u User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// JwtResponse est la réponse de /api/auth/login et /api/auth/register.
type JwtResponse struct {
	Token string   `json:"token"`
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Name  string   `json:"name"`
	Roles []string `json:"roles"`
}
