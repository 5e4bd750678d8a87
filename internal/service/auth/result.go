package auth

import "github.com/lumohq/lumo-backend/internal/domain"

// LoginResult is the outcome of a successful login. Institution is nil
// when the user does not administer one; the session token then carries no
// tenant scope and institution-scoped operations will refuse it.
type LoginResult struct {
	Token       string
	User        *domain.User
	Institution *domain.Institution
}
