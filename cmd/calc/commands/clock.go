package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Dan9191/calc-service/internal/engine/worldclock"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func clockCmd() *cobra.Command {
	var (
		cities []string
		slots  int
		once   bool
	)
	cmd := &cobra.Command{
		Use:   "clock",
		Short: "Live world clock, until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			board := worldclock.NewBoard(max(slots, len(cities)))
			for i, city := range cities {
				if err := board.Select(i, city); err != nil {
					return fmt.Errorf("%s: %w", city, err)
				}
			}

			out := cmd.OutOrStdout()
			var mu sync.Mutex
			var failed error
			show := func(t worldclock.Tick) {
				mu.Lock()
				defer mu.Unlock()
				if t.Err != nil {
					failed = t.Err
					return
				}
				render(out, t, func(w io.Writer) { printTick(w, t) })
			}

			if once {
				clock := worldclock.NewClock(board, show, worldclock.WithNow(now))
				clock.Refresh()
				return failed
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			clock := worldclock.NewClock(board, show,
				worldclock.WithLogger(cron.PrintfLogger(logger)),
				worldclock.WithNow(now),
			)
			if err := clock.Start(); err != nil {
				return err
			}
			<-ctx.Done()
			clock.Stop()
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&cities, "city", nil, "cities to show, in order (repeatable)")
	cmd.Flags().IntVar(&slots, "slots", worldclock.DefaultSlots, "number of clocks")
	cmd.Flags().BoolVar(&once, "once", false, "print one reading and exit")
	return cmd
}

func printTick(w io.Writer, t worldclock.Tick) {
	for _, r := range t.Readings {
		fmt.Fprintf(w, "%-12s %s  %s\n", r.Slot.City, r.Time, r.Date)
	}
	if len(t.Readings) >= 2 {
		fmt.Fprintf(w, "%s is %g hours apart from %s\n", t.Readings[0].Slot.City, t.HourDifference, t.Readings[1].Slot.City)
	}
	fmt.Fprintln(w)
}
