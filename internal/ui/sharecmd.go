package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/share"
)

func (a *App) shareCmd() *cobra.Command {
	var (
		app      bool
		copyFlag bool
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Print your share string",
		Long: `Print the share string for your profile so teammates can import you
with a single command.

With --app the full app state (your profile, the whole team and the
theme) is encoded instead.

Example:
  crewsync share
  crewsync share --copy
  crewsync share --app`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			var code string
			if app {
				snap := a.svc.Snapshot()
				code = share.EncodeSnapshot(snap)
			} else {
				profile := a.svc.Profile()
				if profile.Name == "" {
					return fmt.Errorf("set your name first: crewsync member --help")
				}
				code = share.EncodeProfile(profile)
			}

			fmt.Println(code)
			if copyFlag {
				if err := clipboard.WriteAll(code); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println(formatMuted("copied to clipboard"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&app, "app", false, "Encode the full app state instead of just your profile")
	cmd.Flags().BoolVar(&copyFlag, "copy", false, "Copy the share string to the clipboard")

	return cmd
}
