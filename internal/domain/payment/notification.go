package payment

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrMalformedPayload = errors.New("malformed webhook payload")
	ErrMissingEventID   = errors.New("webhook payload has no event id")
)

// Effect is what a notification asks us to do with the payment it references.
type Effect int

const (
	EffectNone Effect = iota
	EffectCapture
	EffectFail
	EffectAuthorize
)

func (e Effect) String() string {
	switch e {
	case EffectCapture:
		return "capture"
	case EffectFail:
		return "fail"
	case EffectAuthorize:
		return "authorize"
	default:
		return "none"
	}
}

// TargetStatus is the payment status an effect moves to. ok is false for EffectNone.
func (e Effect) TargetStatus() (Status, bool) {
	switch e {
	case EffectCapture:
		return StatusCaptured, true
	case EffectFail:
		return StatusFailed, true
	case EffectAuthorize:
		return StatusAuthorized, true
	default:
		return "", false
	}
}

type Notification struct {
	EventID     string
	StatusToken string
	PaymentRef  string
}

func (n Notification) Effect() Effect {
	return EffectFromToken(n.StatusToken)
}

// EffectFromToken accepts both bare statuses ("succeeded") and dotted provider
// event types ("payment_intent.succeeded").
func EffectFromToken(token string) Effect {
	t := strings.ToLower(token)
	switch {
	case t == "":
		return EffectNone
	case strings.Contains(t, "succeeded"), strings.Contains(t, "captured"):
		return EffectCapture
	case strings.Contains(t, "failed"):
		return EffectFail
	case strings.Contains(t, "authorized"):
		return EffectAuthorize
	default:
		return EffectNone
	}
}

type rawNotification struct {
	ID        json.RawMessage `json:"id"`
	EventID   json.RawMessage `json:"event_id"`
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	PaymentID string          `json:"payment_id"`
	Data      struct {
		Object struct {
			ID string `json:"id"`
		} `json:"object"`
	} `json:"data"`
}

func ParseNotification(raw []byte) (Notification, error) {
	var body rawNotification
	if err := json.Unmarshal(raw, &body); err != nil {
		return Notification{}, ErrMalformedPayload
	}

	eventID := scalarString(body.ID)
	if eventID == "" {
		eventID = scalarString(body.EventID)
	}
	if eventID == "" {
		return Notification{}, ErrMissingEventID
	}

	token := body.Type
	if token == "" {
		token = body.Status
	}
	ref := body.PaymentID
	if ref == "" {
		ref = body.Data.Object.ID
	}

	return Notification{
		EventID:     eventID,
		StatusToken: strings.ToLower(strings.TrimSpace(token)),
		PaymentRef:  strings.TrimSpace(ref),
	}, nil
}

// scalarString accepts a JSON string or number; anything else yields "".
func scalarString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
