package credentials

import (
	"context"
	"fmt"

	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// errNoCredentials may be returned by Credentials implementations to
// make the subscriber act as if there are no Credentials at all. That is,
// no authentication data is attached to the consumer subscription.
var errNoCredentials = xerrors.Wrap(fmt.Errorf("pulsarsource: credentials: no credentials"))

// Credentials is an interface of authentication tokens attached to
// consumer subscriptions.
type Credentials interface {
	// Token must return actual token or error
	Token(context.Context) (string, error)
}

func IsNoCredentials(err error) bool {
	return xerrors.Is(err, errNoCredentials)
}
