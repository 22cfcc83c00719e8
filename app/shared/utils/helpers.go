// Package utils carries the message plumbing shared by all watermill
// handlers: payload (un)marshaling, correlation propagation, and the
// Result type handlers use to request follow-up publishes.
package utils

import (
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/gridline-club/podium-bot/app/shared/attr"
)

// TopicMetadataKey is the metadata key the router reads to resolve where a
// handler-produced message should be published.
const TopicMetadataKey = "topic"

// Result is one follow-up event a handler wants published.
type Result struct {
	Topic   string
	Payload any
}

// Helpers abstracts message construction so handler tests can stub it.
type Helpers interface {
	UnmarshalPayload(msg *message.Message, out any) error
	CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error)
	NewMessage(payload any, topic string) (*message.Message, error)
}

type jsonHelpers struct{}

// NewHelpers returns the JSON-based Helpers implementation.
func NewHelpers() Helpers {
	return jsonHelpers{}
}

func (jsonHelpers) UnmarshalPayload(msg *message.Message, out any) error {
	if err := json.Unmarshal(msg.Payload, out); err != nil {
		return fmt.Errorf("failed to unmarshal payload into %T: %w", out, err)
	}
	return nil
}

// CreateResultMessage builds a new message carrying payload, inheriting the
// correlation ID of the message that triggered it.
func (jsonHelpers) CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.Metadata.Set(TopicMetadataKey, topic)
	if original != nil {
		msg.Metadata.Set(attr.CorrelationIDMetadataKey, original.Metadata.Get(attr.CorrelationIDMetadataKey))
	}
	return msg, nil
}

// NewMessage builds a standalone message with a fresh correlation ID, for
// publishes that are not triggered by an inbound message.
func (jsonHelpers) NewMessage(payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(uuid.New().String(), data)
	msg.Metadata.Set(TopicMetadataKey, topic)
	msg.Metadata.Set(attr.CorrelationIDMetadataKey, uuid.New().String())
	return msg, nil
}
