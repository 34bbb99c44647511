package state

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/crewsync/crewsync/internal/member"
)

// memPort is an in-memory Port for tests.
type memPort struct {
	data    []byte
	saves   int
	loadErr error
	saveErr error
}

func (p *memPort) Load() ([]byte, error) {
	if p.loadErr != nil {
		return nil, p.loadErr
	}
	return p.data, nil
}

func (p *memPort) Save(data []byte) error {
	if p.saveErr != nil {
		return p.saveErr
	}
	p.data = data
	p.saves++
	return nil
}

func TestNewServiceEmptyStore(t *testing.T) {
	svc := NewService(&memPort{})

	snap := svc.Snapshot()
	if snap.Profile.Name != "" {
		t.Errorf("default profile name = %q, want empty", snap.Profile.Name)
	}
	if snap.Profile.WorkHours != "9-17" || snap.Profile.SleepHours != "23-7" {
		t.Errorf("default schedule = %q/%q, want 9-17/23-7", snap.Profile.WorkHours, snap.Profile.SleepHours)
	}
	if !snap.Profile.AutoStatus {
		t.Error("default profile should have auto status enabled")
	}
	if snap.Theme != ThemeDark {
		t.Errorf("default theme = %q, want dark", snap.Theme)
	}
	if !snap.ShowHelp {
		t.Error("default snapshot should show help")
	}
}

func TestNewServiceFallsBackOnCorruptData(t *testing.T) {
	svc := NewService(&memPort{data: []byte("{not json")})
	if got := svc.Profile().Timezone; got != "UTC+0" {
		t.Errorf("profile timezone after corrupt load = %q, want default UTC+0", got)
	}
}

func TestNewServiceFallsBackOnLoadError(t *testing.T) {
	svc := NewService(&memPort{loadErr: errors.New("disk on fire")})
	if got := svc.Profile().Status; got != member.StatusVibing {
		t.Errorf("profile status after load error = %q, want default vibing", got)
	}
}

func TestNewServiceMigratesLegacyTimezones(t *testing.T) {
	stored := Snapshot{
		Profile: member.Profile{Name: "Ana", Timezone: "GMT+2", Status: member.StatusVibing},
		Team: []member.Member{
			{Profile: member.Profile{Name: "Bo", Timezone: "GMT-8", Status: member.StatusPair}, ID: "id-1"},
		},
		Theme: ThemeLight,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		t.Fatal(err)
	}

	svc := NewService(&memPort{data: data})
	if got := svc.Profile().Timezone; got != "UTC+2" {
		t.Errorf("migrated profile timezone = %q, want UTC+2", got)
	}
	team := svc.Team()
	if len(team) != 1 || team[0].Timezone != "UTC-8" {
		t.Errorf("migrated member timezone = %+v, want UTC-8", team)
	}
	if svc.Snapshot().Theme != ThemeLight {
		t.Errorf("theme = %q, want light preserved", svc.Snapshot().Theme)
	}
}

func TestAddUpdateRemoveMember(t *testing.T) {
	port := &memPort{}
	svc := NewService(port)

	m, err := svc.AddMember(member.Profile{
		Name:     "Bo",
		Timezone: "UTC-8",
		Status:   member.StatusVibing,
	})
	if err != nil {
		t.Fatalf("AddMember: %v", err)
	}
	if m.ID == "" {
		t.Error("AddMember did not generate an id")
	}
	if m.LastUpdated.IsZero() {
		t.Error("AddMember did not stamp LastUpdated")
	}
	if port.saves != 1 {
		t.Errorf("saves after add = %d, want 1", port.saves)
	}

	tz := "UTC-5"
	before := m.LastUpdated
	updated, err := svc.UpdateMember(m.ID, member.Update{Timezone: &tz})
	if err != nil {
		t.Fatalf("UpdateMember: %v", err)
	}
	if updated.Timezone != "UTC-5" {
		t.Errorf("timezone after update = %q, want UTC-5", updated.Timezone)
	}
	if updated.Name != "Bo" {
		t.Errorf("partial update clobbered name: %q", updated.Name)
	}
	if updated.LastUpdated.Before(before) {
		t.Error("UpdateMember did not refresh LastUpdated")
	}

	if _, err := svc.UpdateMember("missing", member.Update{}); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("UpdateMember(missing) error = %v, want ErrMemberNotFound", err)
	}

	if err := svc.RemoveMember(m.ID); err != nil {
		t.Fatalf("RemoveMember: %v", err)
	}
	if len(svc.Team()) != 0 {
		t.Errorf("team after remove = %d members, want 0", len(svc.Team()))
	}
	if err := svc.RemoveMember(m.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("RemoveMember(gone) error = %v, want ErrMemberNotFound", err)
	}
	// Callers holding the member package sentinel match the same errors.
	if err := svc.RemoveMember(m.ID); !errors.Is(err, member.ErrNotFound) {
		t.Errorf("RemoveMember(gone) error = %v, want member.ErrNotFound", err)
	}
}

func TestAddMemberValidation(t *testing.T) {
	svc := NewService(&memPort{})

	if _, err := svc.AddMember(member.Profile{Timezone: "UTC+0", Status: member.StatusVibing}); !errors.Is(err, member.ErrEmptyName) {
		t.Errorf("AddMember(no name) error = %v, want ErrEmptyName", err)
	}
	if _, err := svc.AddMember(member.Profile{Name: "X", Status: member.Status("zombie")}); !errors.Is(err, member.ErrInvalidStatus) {
		t.Errorf("AddMember(bad status) error = %v, want ErrInvalidStatus", err)
	}
}

func TestDuplicateNamesAreAllowed(t *testing.T) {
	svc := NewService(&memPort{})

	p := member.Profile{Name: "Bo", Timezone: "UTC+0", Status: member.StatusVibing}
	first, err := svc.AddMember(p)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.AddMember(p)
	if err != nil {
		t.Fatalf("adding a duplicate name should succeed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("duplicate members share an id")
	}
	if len(svc.Team()) != 2 {
		t.Errorf("team size = %d, want 2 (names are not identities)", len(svc.Team()))
	}
}

func TestResetProfileKeepsSchedule(t *testing.T) {
	svc := NewService(&memPort{})
	if err := svc.SetProfile(member.Profile{
		Name:       "Ana",
		Timezone:   "UTC+1",
		Status:     member.StatusPair,
		WorkHours:  "8-16",
		SleepHours: "22-6",
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.ResetProfile(); err != nil {
		t.Fatal(err)
	}
	p := svc.Profile()
	if p.Name != "" {
		t.Errorf("name after reset = %q, want empty", p.Name)
	}
	// Reset only clears the name; the singleton is never destroyed.
	if p.WorkHours != "8-16" || p.Timezone != "UTC+1" {
		t.Errorf("reset wiped profile data: %+v", p)
	}
}

func TestTickAppliesAutoStatus(t *testing.T) {
	port := &memPort{}
	svc := NewService(port)

	if err := svc.SetProfile(member.Profile{
		Name:       "Ana",
		Timezone:   "UTC+0",
		Status:     member.StatusVibing,
		WorkHours:  "9-17",
		SleepHours: "23-7",
		AutoStatus: true,
	}); err != nil {
		t.Fatal(err)
	}
	manual, err := svc.AddMember(member.Profile{
		Name:       "Manny",
		Timezone:   "UTC+0",
		Status:     member.StatusPair,
		WorkHours:  "9-17",
		SleepHours: "23-7",
		AutoStatus: false,
	})
	if err != nil {
		t.Fatal(err)
	}
	auto, err := svc.AddMember(member.Profile{
		Name:       "Otto",
		Timezone:   "UTC-8",
		Status:     member.StatusVibing,
		WorkHours:  "9-17",
		SleepHours: "23-7",
		AutoStatus: true,
	})
	if err != nil {
		t.Fatal(err)
	}

	// 10:00 UTC: Ana is at work, Manny keeps his manual status, Otto is
	// at local 2:00 and asleep.
	now := time.Date(2025, 6, 16, 10, 0, 0, 0, time.UTC)
	saves := port.saves
	changed, err := svc.Tick(now)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !changed {
		t.Fatal("Tick reported no change, want status updates")
	}
	if port.saves != saves+1 {
		t.Errorf("saves after tick = %d, want %d", port.saves, saves+1)
	}

	if got := svc.Profile().Status; got != member.StatusDeepwork {
		t.Errorf("profile status = %q, want deepwork", got)
	}
	for _, m := range svc.Team() {
		switch m.ID {
		case manual.ID:
			if m.Status != member.StatusPair {
				t.Errorf("manual member status = %q, want pair untouched", m.Status)
			}
		case auto.ID:
			if m.Status != member.StatusSleep {
				t.Errorf("auto member status = %q, want sleep", m.Status)
			}
		}
	}

	// A second tick at the same instant changes nothing and saves nothing.
	saves = port.saves
	changed, err = svc.Tick(now)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if changed {
		t.Error("second Tick reported changes, want steady state")
	}
	if port.saves != saves {
		t.Errorf("steady-state tick persisted: saves = %d, want %d", port.saves, saves)
	}
}

func TestSaveErrorsSurface(t *testing.T) {
	port := &memPort{saveErr: errors.New("quota exceeded")}
	svc := NewService(port)

	if _, err := svc.AddMember(member.Profile{Name: "Bo", Status: member.StatusVibing}); err == nil {
		t.Error("AddMember with failing port returned nil error")
	}
}

func TestToggleTheme(t *testing.T) {
	svc := NewService(&memPort{})

	got, err := svc.ToggleTheme()
	if err != nil {
		t.Fatal(err)
	}
	if got != ThemeLight {
		t.Errorf("first toggle = %q, want light", got)
	}
	got, err = svc.ToggleTheme()
	if err != nil {
		t.Fatal(err)
	}
	if got != ThemeDark {
		t.Errorf("second toggle = %q, want dark", got)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	svc := NewService(&memPort{})
	if _, err := svc.AddMember(member.Profile{Name: "Bo", Status: member.StatusVibing}); err != nil {
		t.Fatal(err)
	}

	snap := svc.Snapshot()
	snap.Team[0].Name = "Mallory"
	if svc.Team()[0].Name != "Bo" {
		t.Error("mutating a returned snapshot leaked into the service state")
	}
}
