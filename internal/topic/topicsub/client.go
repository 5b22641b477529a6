package topicsub

import (
	"context"
	"errors"
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// ErrPollTimeout is returned by Consumer.Receive when no message arrived
// before the timeout. It is an expected outcome, not a failure.
var ErrPollTimeout = xerrors.Wrap(errors.New("pulsarsource: poll timeout"))

// Client creates consumers. Implemented by the broker client, out of
// scope of the reader core.
type Client interface {
	Subscribe(ctx context.Context, opts SubscribeOptions) (Consumer, error)
}

// Consumer is one open subscription handle bound to one partition.
type Consumer interface {
	// Receive blocks until a message arrives, the timeout passes or ctx is
	// cancelled. Timeout is reported as ErrPollTimeout.
	Receive(ctx context.Context, timeout time.Duration) (*Message, error)

	// Ack acknowledges one message, used by shared subscription types.
	Ack(ctx context.Context, msg *Message) error

	// Seek moves the subscription cursor, used by ordered subscription types.
	Seek(ctx context.Context, id topicposition.MessageID) error

	Close() error
}
