// Package message models inbound customer messages and the per-message
// outcome record the pipeline persists for every one of them.
package message

import "time"

// InboundMessage is one webhook event. Immutable once created.
type InboundMessage struct {
	Phone      string
	Text       string
	ReceivedAt time.Time
}

// NewInboundMessage stamps an inbound message with its arrival time.
func NewInboundMessage(phone, text string) InboundMessage {
	return InboundMessage{
		Phone:      phone,
		Text:       text,
		ReceivedAt: time.Now(),
	}
}
