package authenticator

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/curaious/taskdeck/internal/config"
)

// Authenticator verifies session tokens minted by the identity provider.
// Users and sessions live entirely in the provider; this only checks
// signatures against the provider's published JWKS and extracts the subject.
type Authenticator struct {
	*oidc.Provider

	issuer       string
	jwksProvider *jwks.CachingProvider
	audience     string
	authEnabled  bool
}

func New(conf *config.Config) (*Authenticator, error) {
	if conf.CLERK_ISSUER == "" {
		return &Authenticator{
			authEnabled: false,
		}, nil
	}

	issuer := conf.CLERK_ISSUER

	provider, err := oidc.NewProvider(context.Background(), issuer)
	if err != nil {
		return nil, err
	}

	issuerURL, err := url.Parse(issuer)
	if err != nil {
		return nil, err
	}

	audience := conf.CLERK_AUTHORIZED_PARTY
	if audience == "" {
		audience = "taskdeck-api"
	}

	return &Authenticator{
		Provider:     provider,
		issuer:       issuer,
		jwksProvider: jwks.NewCachingProvider(issuerURL, 5*time.Minute),
		audience:     audience,
		authEnabled:  true,
	}, nil
}

func (a *Authenticator) AuthEnabled() bool {
	return a.authEnabled
}

// VerifyAccessToken validates the token against the provider's JWKS and
// returns the provider user id (the token subject).
func (a *Authenticator) VerifyAccessToken(ctx context.Context, token string) (string, error) {
	jwtValidator, err := validator.New(a.jwksProvider.KeyFunc, validator.RS256, a.issuer, []string{a.audience})
	if err != nil {
		return "", err
	}

	payload, err := jwtValidator.ValidateToken(ctx, token)
	if err != nil {
		return "", err
	}

	claims, ok := payload.(*validator.ValidatedClaims)
	if !ok || claims.RegisteredClaims.Subject == "" {
		return "", errors.New("token has no subject")
	}

	return claims.RegisteredClaims.Subject, nil
}
