package topicsub

import (
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicposition"
)

// Message is one raw entry received from a consumer, before
// deserialization.
type Message struct {
	ID           topicposition.MessageID
	Payload      []byte
	Key          string
	Properties   map[string]string
	EventTime    time.Time
	PublishTime  time.Time
	ProducerName string
	Topic        string
}
