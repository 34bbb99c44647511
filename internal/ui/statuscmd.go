package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewsync/crewsync/internal/member"
	"github.com/crewsync/crewsync/internal/schedule"
)

func (a *App) statusCmd() *cobra.Command {
	var (
		setStatus string
		auto      string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show or change your presence status",
		Long: `Show your current status, the period your schedule puts you in, and
the status the schedule would suggest.

Setting a status manually does not turn auto status off; while auto
status is enabled the next tick may overwrite it. Use --auto to switch
auto status on or off.

Example:
  crewsync status
  crewsync status --set pair
  crewsync status --auto off`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureService(); err != nil {
				return err
			}

			p := a.svc.Profile()

			if auto != "" {
				enabled, err := parseOnOff(auto)
				if err != nil {
					return err
				}
				p.AutoStatus = enabled
			}

			if setStatus != "" {
				st, err := member.ParseStatus(setStatus)
				if err != nil {
					return fmt.Errorf("invalid status %q (valid: %s)", setStatus, statusList())
				}
				p.Status = st
			}

			if setStatus != "" || auto != "" {
				if err := a.svc.SetProfile(p); err != nil {
					return err
				}
			}

			now := time.Now()
			local := p.LocalTime(now)
			period := schedule.Classify(local, p.WorkHours, p.SleepHours)
			suggested := schedule.SuggestStatus(local, p.WorkHours, p.SleepHours)

			info := p.Status.Info()
			fmt.Printf("status     %s %s\n", info.Icon, info.Label)
			fmt.Println(formatMuted("           " + p.Status.RandomFlavor()))
			fmt.Printf("period     %s\n", formatPeriod(period))
			fmt.Printf("suggested  %s\n", suggested)
			if p.AutoStatus {
				fmt.Println(formatMuted("auto status is on — status follows your schedule"))
			} else {
				fmt.Println(formatMuted("auto status is off"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&setStatus, "set", "", "Set status ("+statusList()+")")
	cmd.Flags().StringVar(&auto, "auto", "", "Turn auto status on or off")

	return cmd
}

func statusList() string {
	s := ""
	for i, st := range member.AllStatuses {
		if i > 0 {
			s += ", "
		}
		s += string(st)
	}
	return s
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}
