package auth

import "github.com/golang-jwt/jwt/v5"

// Profile is the identity the session resolver hands to the rest of the
// system: a subject identifier plus the profile fields used to provision a
// local user on first sign-in.
type Profile struct {
	Subject string
	Name    string
	Email   string
	Image   string
}

// ProfileMapper turns the verified token claims of a provider into a Profile.
type ProfileMapper func(claims jwt.MapClaims) Profile

// ProviderConfig describes one OpenID Connect provider.
type ProviderConfig struct {
	ID            string
	Issuer        string
	ClientID      string
	ClientSecret  string
	DiscoveryURL  string
	Scope         string
	ProfileMapper ProfileMapper
}

// DefaultProfileMapper reads the standard OIDC claims.
func DefaultProfileMapper(claims jwt.MapClaims) Profile {
	return Profile{
		Subject: stringClaim(claims, "sub"),
		Name:    stringClaim(claims, "name"),
		Email:   stringClaim(claims, "email"),
		Image:   stringClaim(claims, "picture"),
	}
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
