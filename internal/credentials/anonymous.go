package credentials

import (
	"context"
	"fmt"

	"github.com/suxinglee/pulsar-source/internal/stack"
)

var (
	_ Credentials  = (*Anonymous)(nil)
	_ fmt.Stringer = (*Anonymous)(nil)
)

// Anonymous implements Credentials interface with Anonymous access
type Anonymous struct {
	sourceInfo string
}

func NewAnonymousCredentials() *Anonymous {
	return &Anonymous{
		sourceInfo: stack.Record(1),
	}
}

// Token implements Credentials.
func (c Anonymous) Token(_ context.Context) (string, error) {
	return "", nil
}

func (c Anonymous) String() string {
	return fmt.Sprintf("Anonymous(from:%q)", c.sourceInfo)
}
