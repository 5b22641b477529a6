package topicdeserialize

import (
	"google.golang.org/protobuf/proto"

	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
	"github.com/suxinglee/pulsar-source/internal/xerrors"
)

// Proto unmarshals the payload into a protobuf message created by
// newMessage and emits it as a single record.
func Proto[M proto.Message](newMessage func() M) Schema[M] {
	return protoSchema[M]{newMessage: newMessage}
}

type protoSchema[M proto.Message] struct {
	newMessage func() M
}

func (s protoSchema[M]) Deserialize(msg *topicsub.Message, emit func(M)) error {
	record := s.newMessage()
	if err := proto.Unmarshal(msg.Payload, record); err != nil {
		return xerrors.WithStackTrace(err)
	}

	emit(record)

	return nil
}
