package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/schedule"
	"github.com/crewsync/crewsync/internal/state"
)

// memberFlags collects the schedule flags shared by the add, update and
// me subcommands. Cobra's Changed tracking decides which ones were set.
type memberFlags struct {
	tz     string
	status string
	work   string
	sleep  string
	avatar string
	auto   string
	preset string
}

func (f *memberFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tz, "tz", "", `Timezone label, e.g. "UTC+2" or "UTC-5.5"`)
	cmd.Flags().StringVar(&f.status, "status", "", "Status ("+statusList()+")")
	cmd.Flags().StringVar(&f.work, "work", "", `Work hours range, e.g. "9-17" (empty to unset)`)
	cmd.Flags().StringVar(&f.sleep, "sleep", "", `Sleep hours range, e.g. "23-7" (empty to unset)`)
	cmd.Flags().StringVar(&f.avatar, "avatar", "", "Avatar character or emoji")
	cmd.Flags().StringVar(&f.auto, "auto", "", "Derive status from the schedule (on/off)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Apply a schedule preset (see: crewsync presets)")
}

// apply overlays the changed flags onto a profile.
func (f *memberFlags) apply(cmd *cobra.Command, p *member.Profile) error {
	if cmd.Flags().Changed("preset") {
		preset := schedule.PresetByName(f.preset)
		if preset == nil {
			return fmt.Errorf("unknown preset %q (see: crewsync presets)", f.preset)
		}
		p.WorkHours = preset.WorkHours
		p.SleepHours = preset.SleepHours
	}
	if cmd.Flags().Changed("tz") {
		p.Timezone = f.tz
	}
	if cmd.Flags().Changed("status") {
		status, err := member.ParseStatus(f.status)
		if err != nil {
			return err
		}
		p.Status = status
	}
	if cmd.Flags().Changed("work") {
		p.WorkHours = f.work
	}
	if cmd.Flags().Changed("sleep") {
		p.SleepHours = f.sleep
	}
	if cmd.Flags().Changed("avatar") {
		p.Avatar = f.avatar
	}
	if cmd.Flags().Changed("auto") {
		auto, err := parseOnOff(f.auto)
		if err != nil {
			return err
		}
		p.AutoStatus = auto
	}
	return nil
}

func (a *App) memberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage your profile and the team roster",
	}

	cmd.AddCommand(a.memberMeCmd())
	cmd.AddCommand(a.memberAddCmd())
	cmd.AddCommand(a.memberUpdateCmd())
	cmd.AddCommand(a.memberRemoveCmd())
	cmd.AddCommand(a.memberListCmd())

	return cmd
}

func (a *App) memberMeCmd() *cobra.Command {
	var flags memberFlags

	cmd := &cobra.Command{
		Use:   "me [name]",
		Short: "Set up or edit your own profile",
		Long: `Edit your own profile. The positional argument renames you; the flags
change individual fields.

Example:
  crewsync member me Ana --tz UTC+2 --work 9-17 --sleep 23-7
  crewsync member me --status deepwork`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			profile := a.svc.Profile()
			if len(args) == 1 {
				profile.Name = strings.TrimSpace(args[0])
			}
			if profile.Name == "" {
				return member.ErrEmptyName
			}
			if err := flags.apply(cmd, &profile); err != nil {
				return err
			}
			if err := a.svc.SetProfile(profile); err != nil {
				return err
			}

			for _, line := range profileLines(profile, time.Now()) {
				fmt.Println(line)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *App) memberAddCmd() *cobra.Command {
	var flags memberFlags

	cmd := &cobra.Command{
		Use:   "add name",
		Short: "Add a teammate to the roster",
		Long: `Add a teammate by hand. Fields left unset default to the standard
schedule (work 9-17, sleep 23-7, UTC+0).

Example:
  crewsync member add Bo --tz UTC-8 --sleep 22-6`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			profile := state.DefaultSnapshot().Profile
			profile.Name = strings.TrimSpace(args[0])
			if err := flags.apply(cmd, &profile); err != nil {
				return err
			}

			m, err := a.svc.AddMember(profile)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s (%s)\n", m.Name, m.Timezone)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func (a *App) memberUpdateCmd() *cobra.Command {
	var (
		flags memberFlags
		name  string
	)

	cmd := &cobra.Command{
		Use:   "update name",
		Short: "Update a teammate",
		Long: `Update the teammate with the given name. Only the fields named by
flags change; --name renames.

Names are labels, not identities: when several teammates share a name
the first roster entry wins.

Example:
  crewsync member update Bo --status afk
  crewsync member update Bo --name Beatrice`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			m, err := a.findMember(args[0])
			if err != nil {
				return err
			}

			profile := m.Profile
			if err := flags.apply(cmd, &profile); err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				profile.Name = strings.TrimSpace(name)
			}

			update := member.Update{
				Name:       &profile.Name,
				Timezone:   &profile.Timezone,
				Status:     &profile.Status,
				WorkHours:  &profile.WorkHours,
				SleepHours: &profile.SleepHours,
				AutoStatus: &profile.AutoStatus,
				Avatar:     &profile.Avatar,
			}
			updated, err := a.svc.UpdateMember(m.ID, update)
			if err != nil {
				return err
			}
			fmt.Println(memberLine(*updated, time.Now()))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "Rename the teammate")
	return cmd
}

func (a *App) memberRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove name",
		Short: "Remove a teammate from the roster",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			m, err := a.findMember(args[0])
			if err != nil {
				return err
			}
			if err := a.svc.RemoveMember(m.ID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", m.Name)
			return nil
		},
	}
}

func (a *App) memberListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the team roster",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			team := a.svc.Team()
			if len(team) == 0 {
				fmt.Println(formatMuted("no team members yet — try: crewsync import"))
				return nil
			}
			now := time.Now()
			for _, m := range team {
				fmt.Println(memberLine(m, now))
			}
			return nil
		},
	}
}

// findMember resolves a roster entry by display name, first match wins.
func (a *App) findMember(name string) (*member.Member, error) {
	name = strings.TrimSpace(name)
	for _, m := range a.svc.Team() {
		if m.Name == name {
			return &m, nil
		}
	}
	return nil, fmt.Errorf("no team member named %q", name)
}
