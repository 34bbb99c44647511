package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/schedule"
)

func (a *App) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in schedule presets",
		Long: `List the built-in schedule presets. Apply one with:

  crewsync member me --preset "Night Owl"`,
		Run: func(_ *cobra.Command, _ []string) {
			for _, p := range schedule.Presets {
				work := p.WorkHours
				sleep := p.SleepHours
				if sleep == "" {
					sleep = "unset"
				}
				fmt.Printf("  %s %-18s work %-6s sleep %-6s %s\n",
					p.Emoji, p.Name, work, sleep, formatMuted(p.Description))
			}
		},
	}
}
