package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/share"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [share_string]",
		Short: "Import a teammate or a full app state from a share string",
		Long: `Import from a share string.

A CrewSync:// string adds (or refreshes) a single teammate. A
CrewSyncApp:// string replaces your whole app state: profile, team and
theme.

Example:
  crewsync import "CrewSync://Ana|UTC+2|vibing|9-17|23-7|A|1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			code := strings.TrimSpace(args[0])
			switch {
			case strings.HasPrefix(code, share.SnapshotScheme):
				snap := share.DecodeSnapshot(code)
				if snap == nil {
					return fmt.Errorf("malformed app share string")
				}
				if err := a.svc.Replace(*snap); err != nil {
					return fmt.Errorf("importing app state: %w", err)
				}
				fmt.Printf("Imported app state: %s and %d team members\n", snap.Profile.Name, len(snap.Team))
				return nil

			case strings.HasPrefix(code, share.ProfileScheme):
				m := share.DecodeMember(code)
				if m == nil {
					return fmt.Errorf("malformed share string")
				}
				if err := a.svc.ImportMember(*m); err != nil {
					return fmt.Errorf("importing member: %w", err)
				}
				fmt.Printf("Imported %s (%s)\n", m.Name, m.Timezone)
				return nil

			default:
				return fmt.Errorf("unrecognized share string: expected %s or %s prefix", share.ProfileScheme, share.SnapshotScheme)
			}
		},
	}

	return cmd
}
