package topicdeserialize

import (
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

// Schema turns one raw consumer message into zero or more typed records.
// Records must be emitted in their order inside the message.
type Schema[T any] interface {
	Deserialize(msg *topicsub.Message, emit func(T)) error
}

// SchemaFunc adapts a plain function to Schema.
type SchemaFunc[T any] func(msg *topicsub.Message, emit func(T)) error

func (f SchemaFunc[T]) Deserialize(msg *topicsub.Message, emit func(T)) error {
	return f(msg, emit)
}
