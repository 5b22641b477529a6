package topiccursor

import (
	"time"

	"github.com/suxinglee/pulsar-source/internal/topic/topicsub"
)

// StopAtEventTime finishes the split on the first message with event time
// at or after t. That message is delivered and becomes the last one.
func StopAtEventTime(t time.Time) StopCursor {
	return eventTimeStopCursor{border: t, inclusive: true}
}

// StopAfterEventTime consumes through event time t and finishes the split
// on the first message with a later event time.
func StopAfterEventTime(t time.Time) StopCursor {
	return eventTimeStopCursor{border: t, inclusive: false}
}

type eventTimeStopCursor struct {
	border    time.Time
	inclusive bool
}

func (c eventTimeStopCursor) ShouldStop(msg *topicsub.Message) bool {
	if c.inclusive {
		return !msg.EventTime.Before(c.border)
	}

	return msg.EventTime.After(c.border)
}

// StopAtPublishTime finishes the split on the first message published at
// or after t.
func StopAtPublishTime(t time.Time) StopCursor {
	return publishTimeStopCursor{border: t}
}

type publishTimeStopCursor struct {
	border time.Time
}

func (c publishTimeStopCursor) ShouldStop(msg *topicsub.Message) bool {
	return !msg.PublishTime.Before(c.border)
}
