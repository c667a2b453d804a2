package match

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID              uuid.UUID
	MatchID         uuid.UUID
	Seq             int
	Timestamp       time.Time
	Type            string
	Payload         json.RawMessage
	CreatedByUserID uuid.UUID
	CreatedAt       time.Time
}

// OutOfOrderError is returned when an append does not carry the next sequence number.
type OutOfOrderError struct {
	Expected int
	Got      int
}

func (e *OutOfOrderError) Error() string {
	return fmt.Sprintf("out of order: expected seq %d, got %d", e.Expected, e.Got)
}

// CheckNext accepts got only when it is exactly currentMax+1.
func CheckNext(currentMax, got int) error {
	if got != currentMax+1 {
		return &OutOfOrderError{Expected: currentMax + 1, Got: got}
	}
	return nil
}

// NormalizePayload returns payload as compact JSON with sorted keys. Empty means {}.
func NormalizePayload(payload []byte) (json.RawMessage, error) {
	if len(bytes.TrimSpace(payload)) == 0 {
		return json.RawMessage(`{}`), nil
	}
	var obj map[string]any
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&obj); err != nil || obj == nil {
		return nil, ErrInvalidPayload
	}
	out, err := json.Marshal(obj)
	if err != nil {
		return nil, ErrInvalidPayload
	}
	return out, nil
}

type Snapshot struct {
	MatchID  uuid.UUID
	Status   Status
	Events   []Event
	Checksum string
}

type canonicalEvent struct {
	Seq       int             `json:"seq"`
	Timestamp string          `json:"ts"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedBy string          `json:"created_by"`
}

// CanonicalJSON encodes events in seq order with fixed field order, UTC
// RFC3339Nano timestamps and sorted payload keys, so equal logs hash equally.
func CanonicalJSON(events []Event) ([]byte, error) {
	out := make([]canonicalEvent, 0, len(events))
	for _, ev := range events {
		payload, err := NormalizePayload(ev.Payload)
		if err != nil {
			return nil, fmt.Errorf("event seq %d: %w", ev.Seq, err)
		}
		out = append(out, canonicalEvent{
			Seq:       ev.Seq,
			Timestamp: ev.Timestamp.UTC().Format(time.RFC3339Nano),
			Type:      ev.Type,
			Payload:   payload,
			CreatedBy: ev.CreatedByUserID.String(),
		})
	}
	return json.Marshal(out)
}

func Checksum(events []Event) (string, error) {
	canonical, err := CanonicalJSON(events)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func NewSnapshot(m *Match, events []Event) (*Snapshot, error) {
	if err := m.EnsureFinal(); err != nil {
		return nil, err
	}
	sum, err := Checksum(events)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		MatchID:  m.ID,
		Status:   m.Status,
		Events:   events,
		Checksum: sum,
	}, nil
}
