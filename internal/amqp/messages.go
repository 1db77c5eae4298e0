package amqp

import (
	"encoding/json"
	"time"
)

// Entities carried by record-change events.
const (
	EntityTransaction  = "transaction"
	EntityProfessional = "professional"
	EntityRoom         = "room"
)

// Operations carried by record-change events.
const (
	OpInsert = "insert"
	OpUpdate = "update"
	OpDelete = "delete"
)

// RecordChangeMessage describes one store mutation. Payload holds the full
// record after the change (empty for deletes) so the journal worker never
// has to call back into the server's in-memory state.
type RecordChangeMessage struct {
	Entity    string          `json:"entity"`
	Op        string          `json:"op"`
	RecordID  string          `json:"record_id"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewRecordChangeMessage creates a change message stamped with the current time.
func NewRecordChangeMessage(entity, op, recordID string, payload json.RawMessage) *RecordChangeMessage {
	return &RecordChangeMessage{
		Entity:    entity,
		Op:        op,
		RecordID:  recordID,
		Payload:   payload,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *RecordChangeMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// RecordChangeMessageFromJSON creates a message from JSON bytes
func RecordChangeMessageFromJSON(data []byte) (*RecordChangeMessage, error) {
	var msg RecordChangeMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
