package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Dan9191/calc-service/internal/catalog"
	"github.com/Dan9191/calc-service/internal/engine/arithmetic"
	"github.com/Dan9191/calc-service/internal/engine/baseconv"
	"github.com/Dan9191/calc-service/internal/engine/gpa"
	"github.com/Dan9191/calc-service/internal/models"
	"github.com/spf13/cobra"
)

func simpleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simple KEY...",
		Short: "Press keypad keys, e.g. calc simple 1 2 + 3 =",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// "12" on the command line means the keys 1 then 2
			var keys []string
			for _, a := range args {
				if len([]rune(a)) > 1 && strings.Trim(a, "0123456789.") == "" {
					for _, r := range a {
						keys = append(keys, string(r))
					}
					continue
				}
				keys = append(keys, a)
			}
			c, err := arithmetic.Replay(keys)
			if err != nil {
				return err
			}
			snap := c.Snapshot()
			return render(cmd.OutOrStdout(), snap, func(w io.Writer) {
				if snap.Expression != snap.Display {
					fmt.Fprintln(w, snap.Expression)
				}
				fmt.Fprintln(w, snap.Display)
			})
		},
	}
}

func gpaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gpa GRADE:CREDITS...",
		Short: "Credit-weighted grade point average, e.g. calc gpa A:3 B+:4",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			courses := make([]models.Course, 0, len(args))
			for _, a := range args {
				grade, credits, ok := strings.Cut(a, ":")
				if !ok {
					return fmt.Errorf("course %q: expected GRADE:CREDITS", a)
				}
				courses = append(courses, models.Course{Grade: grade, Credits: credits})
			}
			res, ok := gpa.Calculate(courses)
			if !ok {
				return notReady(cmd.OutOrStdout())
			}
			return render(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "GPA: %.2f (%g credits)\n", res.GPA, res.TotalCredits)
			})
		},
	}
}

func hexCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "hex NUMBER",
		Short: "Convert between decimal and hexadecimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := baseconv.Mode(strings.ToUpper(from))
			c := baseconv.New(mode)
			if err := c.Load(args[0], mode); err != nil {
				return fmt.Errorf("%s in %s mode: %w", args[0], mode, err)
			}
			if err := c.Convert(); err != nil {
				return err
			}
			res := map[string]string{"digits": c.Digits(), "mode": string(c.Mode())}
			return render(cmd.OutOrStdout(), res, func(w io.Writer) {
				fmt.Fprintf(w, "%s (%s)\n", c.Digits(), c.Mode())
			})
		},
	}
	cmd.Flags().StringVar(&from, "from", string(baseconv.Hex), "radix of the input: HEX or DEC")
	return cmd
}

func calculatorsCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "calculators",
		Short: "List the available calculators",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := catalog.All()
			if category != "" {
				list = catalog.InCategory(category)
			}
			return render(cmd.OutOrStdout(), list, func(w io.Writer) {
				tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
				for _, c := range list {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Category, c.Name, c.Description)
				}
				tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "basic, finance, health or tools")
	return cmd
}
