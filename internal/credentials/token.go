package credentials

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jonboulle/clockwork"

	"github.com/suxinglee/pulsar-source/internal/stack"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
	"github.com/suxinglee/pulsar-source/internal/xsync"
)

var (
	_ Credentials  = (*AccessToken)(nil)
	_ fmt.Stringer = (*AccessToken)(nil)
)

// AccessToken implements Credentials interface with a fixed token,
// the common way of authenticating a Pulsar subscription.
type AccessToken struct {
	token      string
	sourceInfo string
}

func NewAccessTokenCredentials(token string) *AccessToken {
	return &AccessToken{
		token:      token,
		sourceInfo: stack.Record(1),
	}
}

// Token implements Credentials.
func (c *AccessToken) Token(_ context.Context) (string, error) {
	return c.token, nil
}

func (c *AccessToken) String() string {
	return fmt.Sprintf("AccessToken(from:%q)", c.sourceInfo)
}

// TokenSupplier requests a fresh token from the user callback and caches it
// until half of the JWT lifetime is gone, then requests again.
type TokenSupplier struct {
	supply     func(ctx context.Context) (string, error)
	clock      clockwork.Clock
	sourceInfo string

	mu        xsync.Mutex
	token     string
	requestAt time.Time
}

func NewTokenSupplierCredentials(supply func(ctx context.Context) (string, error)) *TokenSupplier {
	return &TokenSupplier{
		supply:     supply,
		clock:      clockwork.NewRealClock(),
		sourceInfo: stack.Record(1),
	}
}

// Token implements Credentials.
func (c *TokenSupplier) Token(ctx context.Context) (token string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && c.clock.Now().Before(c.requestAt) {
		return c.token, nil
	}

	token, err = c.supply(ctx)
	if err != nil {
		return "", xerrors.WithStackTrace(err)
	}

	expiresAt, err := parseExpiresAt(token)
	if err != nil {
		return "", err
	}

	c.token = token
	c.requestAt = c.clock.Now().Add(expiresAt.Sub(c.clock.Now()) / 2)

	return c.token, nil
}

func (c *TokenSupplier) String() string {
	return fmt.Sprintf("TokenSupplier(from:%q)", c.sourceInfo)
}

func parseExpiresAt(raw string) (expiresAt time.Time, err error) {
	var claims jwt.RegisteredClaims
	if _, _, err = jwt.NewParser().ParseUnverified(raw, &claims); err != nil {
		return expiresAt, xerrors.WithStackTrace(err)
	}
	if claims.ExpiresAt == nil {
		return expiresAt, xerrors.WithStackTrace(
			xerrors.Wrap(fmt.Errorf("pulsarsource: credentials: token without exp claim")),
		)
	}

	return claims.ExpiresAt.Time, nil
}
