package commands

import (
	"fmt"
	"io"

	"github.com/Dan9191/calc-service/internal/engine/datecalc"
	"github.com/Dan9191/calc-service/internal/engine/numeric"
	"github.com/spf13/cobra"
)

const dateOut = "Jan 2, 2006"

func ageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "age YYYY-MM-DD",
		Short: "Age in years, months and days",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			birth, ok := numeric.ParseDate(args[0])
			if !ok {
				return notReady(out)
			}
			res, ok := datecalc.Age(birth, now())
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "%d years, %d months, %d days\n", res.Years, res.Months, res.Days)
			})
		},
	}
}

func periodCmd() *cobra.Command {
	var cycle, period string
	cmd := &cobra.Command{
		Use:   "period YYYY-MM-DD",
		Short: "Next period, ovulation and fertile window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in, ok := datecalc.ParseCycleInput(args[0], cycle, period)
			if !ok {
				return notReady(out)
			}
			res, ok := datecalc.Cycle(in)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Next period:     %s - %s\n", res.NextPeriodStart.Format(dateOut), res.NextPeriodEnd.Format(dateOut))
				fmt.Fprintf(w, "Ovulation:       %s\n", res.OvulationDate.Format(dateOut))
				fmt.Fprintf(w, "Fertile window:  %s - %s\n", res.FertileWindow.Start.Format(dateOut), res.FertileWindow.End.Format(dateOut))
			})
		},
	}
	cmd.Flags().StringVar(&cycle, "cycle", "", "cycle length in days (default 28)")
	cmd.Flags().StringVar(&period, "length", "", "period length in days (default 5)")
	return cmd
}

func pregnancyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pregnancy YYYY-MM-DD",
		Short: "Due date from the last menstrual period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lmp, ok := numeric.ParseDate(args[0])
			if !ok {
				return notReady(out)
			}
			res, ok := datecalc.Pregnancy(lmp, now())
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Due date:         %s\n", res.DueDate.Format(dateOut))
				fmt.Fprintf(w, "Gestational age:  %d weeks, %d days\n", res.GestationalAge.Weeks, res.GestationalAge.Days)
				fmt.Fprintf(w, "Trimester:        %s\n", res.Trimester)
			})
		},
	}
}

func zonesCmd() *cobra.Command {
	var age, resting string
	cmd := &cobra.Command{
		Use:     "target-zone",
		Aliases: []string{"heart"},
		Short:   "Karvonen heart-rate training zones",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			in, ok := datecalc.ParseHeartRateInput(age, resting)
			if !ok {
				return notReady(out)
			}
			res, ok := datecalc.HeartRateZones(in)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Max HR: %d bpm, reserve: %d bpm\n", res.MaxHR, res.Reserve)
				for _, z := range res.Zones {
					fmt.Fprintf(w, "%-22s %-8s %3d-%3d bpm  %s\n", z.Name, z.Percentage, z.Low, z.High, z.Benefit)
				}
			})
		},
	}
	cmd.Flags().StringVar(&age, "age", "", "age in years")
	cmd.Flags().StringVar(&resting, "resting", "", "resting heart rate in bpm")
	return cmd
}
