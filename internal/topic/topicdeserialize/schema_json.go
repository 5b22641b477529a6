package topicdeserialize

import (
	"encoding/json"

	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// JSON unmarshals the payload into T and emits a single record.
func JSON[T any]() Schema[T] {
	return jsonSchema[T]{}
}

type jsonSchema[T any] struct{}

func (jsonSchema[T]) Deserialize(msg *topicsub.Message, emit func(T)) error {
	var record T
	if err := json.Unmarshal(msg.Payload, &record); err != nil {
		return xerrors.WithStackTrace(err)
	}

	emit(record)

	return nil
}
