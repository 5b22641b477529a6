package pulsarsource

import (
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicreader"
	"github.com/suxinglee/pulsar-source/trace"
)

// Option tunes one reader.
type Option func(cfg *topicreader.Config)

// WithMaxFetchRecords bounds the record count of one fetch cycle.
func WithMaxFetchRecords(n int) Option {
	return func(cfg *topicreader.Config) {
		cfg.MaxFetchRecords = n
	}
}

// WithMaxFetchTime bounds the duration of one fetch cycle.
func WithMaxFetchTime(d time.Duration) Option {
	return func(cfg *topicreader.Config) {
		cfg.MaxFetchTime = d
	}
}

// WithSubscriptionType selects the broker dispatch discipline, Exclusive
// by default.
func WithSubscriptionType(t SubscriptionType) Option {
	return func(cfg *topicreader.Config) {
		cfg.SubscriptionType = t
	}
}

// WithReceiverQueueSize sets the consumer prefetch queue length.
func WithReceiverQueueSize(n int) Option {
	return func(cfg *topicreader.Config) {
		cfg.ReceiverQueueSize = n
	}
}

// WithCredentials sets the auth token source for subscribe calls.
func WithCredentials(creds Credentials) Option {
	return func(cfg *topicreader.Config) {
		cfg.Credentials = creds
	}
}

// WithTrace appends t to the reader's trace callbacks.
func WithTrace(t *trace.Source) Option {
	return func(cfg *topicreader.Config) {
		cfg.Trace = cfg.Trace.Compose(t)
	}
}
