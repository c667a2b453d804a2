package reservation

import (
	"encoding/json"
	"errors"
	"strings"
)

var (
	ErrInvalidActorType   = errors.New("invalid actor type")
	ErrInvalidActorID     = errors.New("actor id must not be blank")
	ErrCustomVenueMissing = errors.New("custom venue is required when using own court")
	ErrCustomVenueInvalid = errors.New("custom venue must be a JSON object")
)

type ActorType string

const (
	ActorIndividual ActorType = "individual"
	ActorCompany    ActorType = "company"
	ActorSchool     ActorType = "school"
	ActorAcademy    ActorType = "academy"
)

func (a ActorType) String() string {
	return string(a)
}

func (a ActorType) IsValid() bool {
	switch a {
	case ActorIndividual, ActorCompany, ActorSchool, ActorAcademy:
		return true
	default:
		return false
	}
}

// ActorInfo classifies on whose behalf a reservation is made.
type ActorInfo struct {
	typ ActorType
	id  *string
}

func NewActorInfo(typ string, id *string) (ActorInfo, error) {
	t := ActorType(strings.ToLower(strings.TrimSpace(typ)))
	if !t.IsValid() {
		return ActorInfo{}, ErrInvalidActorType
	}
	if id != nil {
		trimmed := strings.TrimSpace(*id)
		if trimmed == "" {
			return ActorInfo{}, ErrInvalidActorID
		}
		id = &trimmed
	}
	return ActorInfo{typ: t, id: id}, nil
}

func (a ActorInfo) Type() ActorType { return a.typ }
func (a ActorInfo) ID() *string     { return a.id }

// CustomVenue is the booker-supplied venue for own-court reservations, kept as raw JSON.
type CustomVenue struct {
	raw json.RawMessage
}

func NewCustomVenue(raw []byte) (CustomVenue, error) {
	if len(raw) == 0 {
		return CustomVenue{}, ErrCustomVenueMissing
	}
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return CustomVenue{}, ErrCustomVenueInvalid
	}
	return CustomVenue{raw: json.RawMessage(raw)}, nil
}

func (v CustomVenue) Raw() json.RawMessage { return v.raw }

// Sport returns the "sport" field of the venue, or "" when absent.
func (v CustomVenue) Sport() string {
	var body struct {
		Sport string `json:"sport"`
	}
	if err := json.Unmarshal(v.raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Sport)
}
