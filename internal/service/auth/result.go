package auth

import "github.com/heartmarshall/beetracker-backend/internal/domain"

// AuthResult is returned by SignInAnonymous.
type AuthResult struct {
	AccessToken string
	User        *domain.User
}
