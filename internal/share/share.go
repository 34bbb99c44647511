// Package share implements the copy/paste wire format for exchanging
// profiles and whole app snapshots between crewsync users.
//
// A single profile travels as
//
//	CrewSync://name|timezone|status|work|sleep|avatar|autoflag
//
// and a whole snapshot as
//
//	CrewSyncApp://self~memberA|memberB|...~theme
//
// where the self segment and each team member use '^' as the field
// delimiter so members can be '|'-joined at the next level up.
//
// Decoding is deliberately total: malformed input yields nil, never an
// error or panic, and a nil result means "do not touch existing state".
package share

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/state"
)

// Wire format constants.
const (
	ProfileScheme  = "CrewSync://"
	SnapshotScheme = "CrewSyncApp://"

	fieldDelim   = "|" // fields of a standalone profile
	embedDelim   = "^" // fields of a profile embedded in a snapshot
	teamDelim    = "|" // members inside a snapshot's team segment
	segmentDelim = "~" // snapshot top-level segments

	// A profile needs at least name through sleep hours; avatar and the
	// auto flag are optional trailing fields.
	minProfileFields = 5
)

// EncodeProfile serializes a profile as a standalone share string.
func EncodeProfile(p member.Profile) string {
	return ProfileScheme + encodeFields(p, fieldDelim)
}

// DecodeProfile parses a standalone profile share string. It returns nil
// when the scheme prefix is wrong or too few fields are present. The
// name field may decode empty; callers treat that as invalid too.
func DecodeProfile(s string) *member.Profile {
	body, ok := strings.CutPrefix(s, ProfileScheme)
	if !ok {
		return nil
	}
	return decodeFields(body, fieldDelim)
}

// DecodeMember parses a standalone profile share string into a roster
// member with a fresh id and the current timestamp. Like the snapshot
// member decode it keeps whatever status string the sender used; unknown
// statuses render with their default presentation instead of failing the
// import. Returns nil for a wrong prefix, too few fields, or an empty
// name.
func DecodeMember(s string) *member.Member {
	p := DecodeProfile(s)
	if p == nil || p.Name == "" {
		return nil
	}
	return &member.Member{
		Profile:     *p,
		ID:          uuid.NewString(),
		LastUpdated: time.Now(),
	}
}

// EncodeSnapshot serializes the whole app state: the self profile, the
// team roster, and the theme.
func EncodeSnapshot(snap state.Snapshot) string {
	members := make([]string, len(snap.Team))
	for i, m := range snap.Team {
		members[i] = encodeFields(m.Profile, embedDelim)
	}

	segments := []string{
		encodeFields(snap.Profile, embedDelim),
		strings.Join(members, teamDelim),
		string(snap.Theme),
	}
	return SnapshotScheme + strings.Join(segments, segmentDelim)
}

// DecodeSnapshot parses an app share string. The whole decode fails (nil)
// when the prefix is wrong, the segment count is off, or the self segment
// does not yield a named profile. Individual malformed team members are
// skipped rather than failing the import, and every member that does
// decode gets a fresh id and the current timestamp: reimported profiles
// are always new entities.
func DecodeSnapshot(s string) *state.Snapshot {
	body, ok := strings.CutPrefix(s, SnapshotScheme)
	if !ok {
		return nil
	}

	segments := strings.Split(body, segmentDelim)
	if len(segments) < 3 {
		return nil
	}

	self := decodeFields(segments[0], embedDelim)
	if self == nil || self.Name == "" {
		return nil
	}

	now := time.Now()
	var team []member.Member
	if strings.TrimSpace(segments[1]) != "" {
		for _, enc := range strings.Split(segments[1], teamDelim) {
			if strings.TrimSpace(enc) == "" {
				continue
			}
			p := decodeFields(enc, embedDelim)
			if p == nil || p.Name == "" {
				continue
			}
			team = append(team, member.Member{
				Profile:     *p,
				ID:          uuid.NewString(),
				LastUpdated: now,
			})
		}
	}

	return &state.Snapshot{
		Profile:  *self,
		Team:     team,
		Theme:    state.ParseTheme(segments[2]),
		ShowHelp: false,
	}
}

// encodeFields joins the 7 profile fields with the given delimiter.
// Field order is part of the wire format.
func encodeFields(p member.Profile, delim string) string {
	auto := "0"
	if p.AutoStatus {
		auto = "1"
	}
	fields := []string{
		p.Name,
		p.Timezone,
		string(p.Status),
		p.WorkHours,
		p.SleepHours,
		p.Avatar,
		auto,
	}
	return strings.Join(fields, delim)
}

// decodeFields splits an encoded profile and maps the fields back.
// Returns nil when fewer than the required fields are present.
func decodeFields(s, delim string) *member.Profile {
	parts := strings.Split(s, delim)
	if len(parts) < minProfileFields {
		return nil
	}

	p := &member.Profile{
		Name:       parts[0],
		Timezone:   parts[1],
		Status:     member.Status(parts[2]),
		WorkHours:  parts[3],
		SleepHours: parts[4],
	}
	if len(parts) > 5 {
		p.Avatar = parts[5]
	}
	if len(parts) > 6 {
		p.AutoStatus = parts[6] == "1"
	}
	return p
}
