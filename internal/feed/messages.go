package feed

import (
	"encoding/json"
	"fmt"
	"time"
)

// MessageType identifies the kind of feed message
type MessageType string

const (
	// MessageTypeBoardState carries the currently revealed cards for a table
	MessageTypeBoardState MessageType = "board_state"
	// MessageTypePing is a keepalive from the bridge
	MessageTypePing MessageType = "ping"
)

// Message is the envelope for all feed messages
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewMessage creates a message envelope with the payload marshaled
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s data: %w", msgType, err)
	}
	return &Message{
		Type:      msgType,
		Data:      payload,
		Timestamp: time.Now().UTC(),
	}, nil
}

// BoardStateData is the payload of a board_state message. Cards are the
// integer codes the contract uses (rank*4 + suit, 0-51); decryption has
// already happened upstream, this feed only ever sees revealed cards.
type BoardStateData struct {
	TableID   string `json:"table_id"`
	Hole      []int  `json:"hole"`
	Community []int  `json:"community"`
}
