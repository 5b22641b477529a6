package topicdeserialize

import (
	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

// Bytes emits the raw payload as a single record.
func Bytes() Schema[[]byte] {
	return bytesSchema{}
}

type bytesSchema struct{}

func (bytesSchema) Deserialize(msg *topicsub.Message, emit func([]byte)) error {
	emit(msg.Payload)

	return nil
}

// String emits the payload as one UTF-8 string record.
func String() Schema[string] {
	return stringSchema{}
}

type stringSchema struct{}

func (stringSchema) Deserialize(msg *topicsub.Message, emit func(string)) error {
	emit(string(msg.Payload))

	return nil
}
