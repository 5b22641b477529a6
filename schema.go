package pulsarsource

import (
	"google.golang.org/protobuf/proto"

	"github.com/suxinglee/pulsar-source/internal/topic/topicdeserialize"
)

// Schema turns one received message into zero or more records of type T.
type Schema[T any] interface {
	Deserialize(msg *Message, emit func(T)) error
}

// SchemaFunc adapts a function to Schema.
type SchemaFunc[T any] func(msg *Message, emit func(T)) error

func (f SchemaFunc[T]) Deserialize(msg *Message, emit func(T)) error {
	return f(msg, emit)
}

// BytesSchema emits the raw payload as a single record.
func BytesSchema() Schema[[]byte] {
	return topicdeserialize.Bytes()
}

// StringSchema emits the payload as one UTF-8 string record.
func StringSchema() Schema[string] {
	return topicdeserialize.String()
}

// JSONSchema unmarshals the payload into one T record.
func JSONSchema[T any]() Schema[T] {
	return topicdeserialize.JSON[T]()
}

// ProtoSchema unmarshals the payload into one protobuf message record.
// newMessage must return a fresh message for every call.
func ProtoSchema[M proto.Message](newMessage func() M) Schema[M] {
	return topicdeserialize.Proto(newMessage)
}
