// Package sync replicates draw-store state between replicas over a shared
// broadcast channel. Replication is whole-slice replace, last writer wins:
// there is no merging, no versioning and no catch-up for late joiners.
package sync

import "encoding/json"

// DefaultChannel is the pub/sub channel shared by every replica of one event.
const DefaultChannel = "draw-sync"

// MessageType names the state slice a message carries.
type MessageType string

const (
	MessageWinners      MessageType = "winners"
	MessagePrizes       MessageType = "prizes"
	MessageParticipants MessageType = "participants"
	MessageCage         MessageType = "cage"
)

// Message is one broadcast unit: the entire new value of a single slice.
// Origin identifies the publishing replica; pub/sub delivers messages back
// to their publisher, which must discard its own.
type Message struct {
	Type    MessageType     `json:"type"`
	Origin  string          `json:"origin,omitempty"`
	Payload json.RawMessage `json:"payload"`
}

// CagePayload is the wire shape for MessageCage.
type CagePayload struct {
	Display string   `json:"display"`
	History []string `json:"history"`
}
