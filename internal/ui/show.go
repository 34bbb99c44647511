package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/collab"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the dashboard as plain text",
		Long: `Show the current dashboard without entering the interactive view:
your profile, the team roster with local times, and the best
collaboration windows.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			now := time.Now()
			snap := a.svc.Snapshot()

			for _, line := range profileLines(snap.Profile, now) {
				fmt.Println(line)
			}

			fmt.Println(separator())
			fmt.Println(formatHeader(fmt.Sprintf("Team (%d)", len(snap.Team))))
			if len(snap.Team) == 0 {
				fmt.Println(formatMuted("  no team members yet — paste a share string with: crewsync import"))
			}
			for _, m := range snap.Team {
				fmt.Println(memberLine(m, now))
			}

			fmt.Println(separator())
			fmt.Println(formatHeader("Collaboration windows") + " " + formatMuted("(UTC)"))

			windows := collab.FindWindows(snap.Profile.Collaborator(), teamCollaborators(snap.Team))
			if len(windows) == 0 {
				fmt.Println(formatMuted("  no overlapping windows — add team members to find overlap"))
				return nil
			}
			for _, w := range collab.TopWindows(windows, 3) {
				fmt.Println(windowLine(w))
			}
			return nil
		},
	}
}
