package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/collab"
)

func (a *App) windowsCmd() *cobra.Command {
	var (
		top      int
		calendar string
	)

	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List collaboration windows for the team",
		Long: `Scan the 24 UTC hours of the day and list the windows where at least
two people (you included) are awake.

With --calendar a calendar event link is printed under each window for
the given date.

Example:
  crewsync windows
  crewsync windows --top 3
  crewsync windows --calendar 2025-07-01`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			snap := a.svc.Snapshot()
			if len(snap.Team) == 0 {
				fmt.Println(formatMuted("no team members yet — windows need at least two people"))
				return nil
			}

			windows := collab.FindWindows(snap.Profile.Collaborator(), teamCollaborators(snap.Team))
			if top > 0 {
				windows = collab.TopWindows(windows, top)
			}
			if len(windows) == 0 {
				fmt.Println(formatMuted("no overlapping windows found"))
				return nil
			}

			var date time.Time
			if calendar != "" {
				parsed, err := time.Parse("2006-01-02", calendar)
				if err != nil {
					return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", calendar)
				}
				date = parsed
			}

			fmt.Println(formatHeader("Collaboration windows") + " " + formatMuted("(UTC)"))
			for _, w := range windows {
				fmt.Println(windowLine(w))
				if calendar != "" {
					fmt.Println("    " + formatMuted(collab.EventURL(w, date)))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&top, "top", 0, "Only show the N windows with the most people")
	cmd.Flags().StringVar(&calendar, "calendar", "", "Print calendar event links for the given date (YYYY-MM-DD)")

	return cmd
}
