// Package member defines the core domain types for crewsync: the personal
// profile and the imported team roster.
package member

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/crewsync/crewsync/internal/collab"
	"github.com/crewsync/crewsync/internal/timerange"
)

// Validation errors.
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrInvalidStatus = errors.New("unknown status")
	ErrNotFound      = errors.New("member not found")
)

// Profile holds the schedule and presence data shared by the personal
// profile and every team member. Timezone is a "UTC+N" label (fractional
// offsets like "UTC+5.5" are valid); WorkHours and SleepHours are "HH-HH"
// hour ranges where the empty string means "not set".
type Profile struct {
	Name       string `json:"name"`
	Timezone   string `json:"timezone"`
	Status     Status `json:"status"`
	WorkHours  string `json:"workHours"`
	SleepHours string `json:"sleepHours"`
	AutoStatus bool   `json:"autoStatus"`
	Avatar     string `json:"avatar,omitempty"`
}

// Member is a teammate on the roster. Unlike the singleton profile it
// carries a stable generated id for update/delete and a last-mutation
// timestamp. Names are display labels, not identities: duplicates across
// the roster are allowed and never deduplicated.
type Member struct {
	Profile
	ID          string    `json:"id"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// New creates a Member from a profile, generating a fresh id and stamping
// the mutation time.
func New(p Profile, now time.Time) (*Member, error) {
	if p.Name == "" {
		return nil, ErrEmptyName
	}
	if !p.Status.Valid() {
		return nil, ErrInvalidStatus
	}
	return &Member{
		Profile:     p,
		ID:          uuid.NewString(),
		LastUpdated: now,
	}, nil
}

// Update holds a partial member update. Nil fields are left untouched.
type Update struct {
	Name       *string
	Timezone   *string
	Status     *Status
	WorkHours  *string
	SleepHours *string
	AutoStatus *bool
	Avatar     *string
}

// Apply merges the update into the member and refreshes LastUpdated.
func (m *Member) Apply(u Update, now time.Time) {
	if u.Name != nil {
		m.Name = *u.Name
	}
	if u.Timezone != nil {
		m.Timezone = *u.Timezone
	}
	if u.Status != nil {
		m.Status = *u.Status
	}
	if u.WorkHours != nil {
		m.WorkHours = *u.WorkHours
	}
	if u.SleepHours != nil {
		m.SleepHours = *u.SleepHours
	}
	if u.AutoStatus != nil {
		m.AutoStatus = *u.AutoStatus
	}
	if u.Avatar != nil {
		m.Avatar = *u.Avatar
	}
	m.LastUpdated = now
}

// Offset returns the numeric UTC offset in hours parsed from the
// timezone label. Unparsable labels degrade to 0.
func (p Profile) Offset() float64 {
	return timerange.ParseOffset(p.Timezone)
}

// Collaborator reduces the profile to the fields the window finder needs.
func (p Profile) Collaborator() collab.Participant {
	return collab.Participant{
		Name:       p.Name,
		Offset:     p.Offset(),
		WorkHours:  p.WorkHours,
		SleepHours: p.SleepHours,
	}
}

// LocalTime returns the wall-clock time at the profile's UTC offset.
// Fractional offsets shift by whole minutes (UTC+5.5 is 330 minutes).
func (p Profile) LocalTime(now time.Time) time.Time {
	offset := p.Offset()
	return now.UTC().Add(time.Duration(offset * float64(time.Hour)))
}
