package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"post-service/internal/domain"
)

// SessionResolver verifies bearer tokens issued by the configured provider
// and maps their claims to a Profile. It holds no per-request state and
// caches nothing across requests.
type SessionResolver struct {
	provider ProviderConfig
}

func NewSessionResolver(provider ProviderConfig) *SessionResolver {
	if provider.ProfileMapper == nil {
		provider.ProfileMapper = DefaultProfileMapper
	}
	return &SessionResolver{provider: provider}
}

// Resolve verifies the compact token and returns the mapped profile. Any
// absent, malformed, expired or mis-issued token resolves to
// domain.ErrUnauthorized.
func (s *SessionResolver) Resolve(tokenString string) (*Profile, error) {
	if tokenString == "" {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.provider.ClientSecret), nil
	},
		jwt.WithIssuer(s.provider.Issuer),
		jwt.WithAudience(s.provider.ClientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile := s.provider.ProfileMapper(claims)
	if profile.Subject == "" || profile.Email == "" {
		return nil, domain.ErrUnauthorized
	}

	return &profile, nil
}
