// Package state owns the application snapshot: the personal profile, the
// team roster, and UI preferences. A single Service instance holds the
// in-memory state and writes the whole document through an injected
// persistence port on every change.
package state

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/schedule"
)

// ErrMemberNotFound is returned for roster operations on unknown ids.
var ErrMemberNotFound = member.ErrNotFound

// Theme is the dashboard color mode.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme normalizes a theme label; anything but "light" is dark.
func ParseTheme(s string) Theme {
	if s == string(ThemeLight) {
		return ThemeLight
	}
	return ThemeDark
}

// Snapshot is the whole persisted application state. It is the unit of
// export/import and of persistence: the store always rewrites the full
// document.
type Snapshot struct {
	Profile  member.Profile  `json:"personalInfo"`
	Team     []member.Member `json:"teamMembers"`
	Theme    Theme           `json:"theme"`
	ShowHelp bool            `json:"showHelp"`
}

// DefaultSnapshot returns the state for a first run: an unnamed profile
// on a standard schedule, an empty roster, and the dark theme.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Profile: member.Profile{
			Name:       "",
			Timezone:   "UTC+0",
			Status:     member.StatusVibing,
			WorkHours:  "9-17",
			SleepHours: "23-7",
			AutoStatus: true,
		},
		Team:     []member.Member{},
		Theme:    ThemeDark,
		ShowHelp: true,
	}
}

// Port is the persistence boundary: load the stored snapshot document and
// save a replacement. Load returns nil bytes when nothing is stored yet.
type Port interface {
	Load() ([]byte, error)
	Save(data []byte) error
}

// Service owns the in-memory snapshot. Every mutation goes through a
// method here, which persists the new state before returning. The core
// computations never reach into this state; callers pass copies out via
// Snapshot().
type Service struct {
	snap Snapshot
	port Port
	now  func() time.Time
}

// NewService loads the snapshot from the port. A missing, unreadable, or
// corrupted document falls back to the default snapshot; persistence
// failures never prevent startup.
func NewService(port Port) *Service {
	s := &Service{
		snap: DefaultSnapshot(),
		port: port,
		now:  time.Now,
	}

	data, err := port.Load()
	if err != nil || len(data) == 0 {
		return s
	}

	loaded := DefaultSnapshot()
	if err := json.Unmarshal(data, &loaded); err != nil {
		return s
	}
	migrate(&loaded)
	s.snap = loaded
	return s
}

// migrate normalizes legacy field encodings in stored snapshots.
// Early versions labelled timezones "GMT+N"; the offset parser still
// accepts both, but stored data is rewritten to the UTC prefix.
func migrate(snap *Snapshot) {
	snap.Profile.Timezone = normalizeTimezone(snap.Profile.Timezone)
	for i := range snap.Team {
		snap.Team[i].Timezone = normalizeTimezone(snap.Team[i].Timezone)
	}
	if snap.Theme != ThemeLight {
		snap.Theme = ThemeDark
	}
}

func normalizeTimezone(tz string) string {
	if strings.HasPrefix(tz, "GMT") {
		return "UTC" + strings.TrimPrefix(tz, "GMT")
	}
	return tz
}

// Snapshot returns a copy of the current state.
func (s *Service) Snapshot() Snapshot {
	snap := s.snap
	snap.Team = append([]member.Member(nil), s.snap.Team...)
	return snap
}

// Profile returns the current personal profile.
func (s *Service) Profile() member.Profile {
	return s.snap.Profile
}

// Team returns a copy of the roster.
func (s *Service) Team() []member.Member {
	return append([]member.Member(nil), s.snap.Team...)
}

// SetProfile replaces the personal profile.
func (s *Service) SetProfile(p member.Profile) error {
	s.snap.Profile = p
	return s.persist()
}

// ResetProfile clears the profile name, signalling the first-run setup.
// The profile singleton is never removed, only reset.
func (s *Service) ResetProfile() error {
	s.snap.Profile.Name = ""
	return s.persist()
}

// AddMember adds a new roster entry built from the profile data.
func (s *Service) AddMember(p member.Profile) (*member.Member, error) {
	m, err := member.New(p, s.now())
	if err != nil {
		return nil, err
	}
	s.snap.Team = append(s.snap.Team, *m)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return m, nil
}

// ImportMember appends an already constructed member, as produced by a
// share-string decode (which has generated a fresh id already).
func (s *Service) ImportMember(m member.Member) error {
	s.snap.Team = append(s.snap.Team, m)
	return s.persist()
}

// UpdateMember applies a partial update to the member with the given id
// and refreshes its LastUpdated stamp.
func (s *Service) UpdateMember(id string, u member.Update) (*member.Member, error) {
	for i := range s.snap.Team {
		if s.snap.Team[i].ID != id {
			continue
		}
		s.snap.Team[i].Apply(u, s.now())
		if err := s.persist(); err != nil {
			return nil, err
		}
		m := s.snap.Team[i]
		return &m, nil
	}
	return nil, ErrMemberNotFound
}

// RemoveMember deletes the member with the given id.
func (s *Service) RemoveMember(id string) error {
	for i := range s.snap.Team {
		if s.snap.Team[i].ID == id {
			s.snap.Team = append(s.snap.Team[:i], s.snap.Team[i+1:]...)
			return s.persist()
		}
	}
	return ErrMemberNotFound
}

// Replace swaps in a whole new snapshot, as decoded from an app share
// string. The caller is responsible for having regenerated member ids.
func (s *Service) Replace(snap Snapshot) error {
	migrate(&snap)
	s.snap = snap
	return s.persist()
}

// SetTheme switches the color mode.
func (s *Service) SetTheme(t Theme) error {
	s.snap.Theme = t
	return s.persist()
}

// ToggleTheme flips between dark and light.
func (s *Service) ToggleTheme() (Theme, error) {
	if s.snap.Theme == ThemeDark {
		s.snap.Theme = ThemeLight
	} else {
		s.snap.Theme = ThemeDark
	}
	return s.snap.Theme, s.persist()
}

// SetShowHelp records whether the help overlay is shown on start.
func (s *Service) SetShowHelp(show bool) error {
	s.snap.ShowHelp = show
	return s.persist()
}

// Tick re-derives auto statuses from the wall clock: the profile against
// its own local time and every roster member against theirs. Only members
// with auto status enabled are touched, and nothing is persisted unless
// at least one status actually changed.
func (s *Service) Tick(now time.Time) (changed bool, err error) {
	p := &s.snap.Profile
	if st, ok := schedule.AutoStatus(p.LocalTime(now), p.WorkHours, p.SleepHours, p.AutoStatus); ok && st != p.Status {
		p.Status = st
		changed = true
	}

	for i := range s.snap.Team {
		m := &s.snap.Team[i]
		st, ok := schedule.AutoStatus(m.LocalTime(now), m.WorkHours, m.SleepHours, m.AutoStatus)
		if ok && st != m.Status {
			m.Status = st
			m.LastUpdated = now
			changed = true
		}
	}

	if !changed {
		return false, nil
	}
	return true, s.persist()
}

func (s *Service) persist() error {
	data, err := json.Marshal(s.snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := s.port.Save(data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	return nil
}
