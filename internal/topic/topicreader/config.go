package topicreader

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/suxinglee/pulsar-source/internal/credentials"
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
	"github.com/suxinglee/pulsar-source/trace"
)

const (
	DefaultMaxFetchRecords   = 100
	DefaultMaxFetchTime      = 10 * time.Second
	DefaultReceiverQueueSize = 1000
)

var (
	errNonPositiveMaxFetchRecords = xerrors.Wrap(
		errors.New("pulsarsource: max fetch records per cycle must be greater than zero"),
	)
	errNonPositiveMaxFetchTime = xerrors.Wrap(
		errors.New("pulsarsource: max fetch time per cycle must be greater than zero"),
	)
	errEmptySubscriptionName = xerrors.Wrap(
		errors.New("pulsarsource: create split reader with empty subscription name"),
	)
)

// Config bounds one split reader's fetch cycles.
type Config struct {
	MaxFetchRecords   int
	MaxFetchTime      time.Duration
	SubscriptionName  string
	SubscriptionType  topicsub.SubscriptionType
	ReceiverQueueSize int
	Credentials       credentials.Credentials
	Clock             clockwork.Clock
	Trace             *trace.Source
}

func NewConfig() Config {
	return Config{
		MaxFetchRecords:   DefaultMaxFetchRecords,
		MaxFetchTime:      DefaultMaxFetchTime,
		SubscriptionType:  topicsub.SubscriptionTypeExclusive,
		ReceiverQueueSize: DefaultReceiverQueueSize,
		Credentials:       credentials.NewAnonymousCredentials(),
		Clock:             clockwork.NewRealClock(),
		Trace:             &trace.Source{},
	}
}

func (cfg *Config) Validate() []error {
	var validateErrors []error

	if cfg.MaxFetchRecords <= 0 {
		validateErrors = append(validateErrors, errNonPositiveMaxFetchRecords)
	}
	if cfg.MaxFetchTime <= 0 {
		validateErrors = append(validateErrors, errNonPositiveMaxFetchTime)
	}
	if cfg.SubscriptionName == "" {
		validateErrors = append(validateErrors, errEmptySubscriptionName)
	}
	if err := cfg.SubscriptionType.Validate(); err != nil {
		validateErrors = append(validateErrors, err)
	}

	return validateErrors
}
