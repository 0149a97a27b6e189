package auth

import domain "tijaniyah/backend/internal/domain/auth"

// TokenManager abstracts token issuance and verification.
type TokenManager interface {
	Generate(userID, email string) (string, error)
	Validate(token string) (domain.Principal, error)
}
