package config

import "os"

type AuthConfig struct {
	JwksUrl string
}

// GetAuthConfig returns nil when JWKS_URL is unset, which leaves the API open.
func GetAuthConfig() *AuthConfig {
	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" {
		return nil
	}
	return &AuthConfig{JwksUrl: jwksUrl}
}
