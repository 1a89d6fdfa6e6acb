package websocket

import "encoding/json"

// Message defines the structure for websocket messages.
type Message struct {
	Action  string      `json:"action"`
	Payload interface{} `json:"payload"`
}

// NewEventMessage encodes an event notification for delivery to clients.
func NewEventMessage(payload interface{}) []byte {
	b, _ := json.Marshal(Message{Action: "event", Payload: payload})
	return b
}
