package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dan9191/calc-service/internal/models"
	"github.com/spf13/cobra"
)

func notesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Sticky notes attached to a calculator",
	}

	list := &cobra.Command{
		Use:   "list CALCULATOR",
		Short: "Show the notes of a calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			notes, err := s.ListNotes(cmd.Context(), localDevice, args[0])
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), notes, func(w io.Writer) {
				if len(notes) == 0 {
					fmt.Fprintln(w, "No notes yet.")
				}
				for _, n := range notes {
					printNote(w, n)
				}
			})
		},
	}

	add := &cobra.Command{
		Use:   "add CALCULATOR TEXT...",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			note, err := s.AddNote(cmd.Context(), localDevice, args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), note, func(w io.Writer) { printNote(w, note) })
		},
	}

	edit := &cobra.Command{
		Use:   "edit CALCULATOR ID TEXT...",
		Short: "Replace the text of a note",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			note, err := s.UpdateNote(cmd.Context(), localDevice, args[0], args[1], strings.Join(args[2:], " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), note, func(w io.Writer) { printNote(w, note) })
		},
	}

	rm := &cobra.Command{
		Use:   "rm CALCULATOR ID",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			return s.DeleteNote(cmd.Context(), localDevice, args[0], args[1])
		},
	}

	cmd.AddCommand(list, add, edit, rm)
	return cmd
}

func printNote(w io.Writer, n models.Note) {
	fmt.Fprintf(w, "%s  %s  %s\n", n.ID, n.Color, n.Text)
}

func favoritesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "List favorite calculators",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			routes, err := s.ListFavorites(cmd.Context(), localDevice)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), routes, func(w io.Writer) {
				for _, r := range routes {
					fmt.Fprintln(w, r)
				}
			})
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle ROUTE",
		Short: "Add or remove a favorite, e.g. /emi-calculator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openService()
			if err != nil {
				return err
			}
			on, err := s.ToggleFavorite(cmd.Context(), localDevice, args[0])
			if err != nil {
				return err
			}
			res := map[string]any{"route": args[0], "favorite": on}
			return render(cmd.OutOrStdout(), res, func(w io.Writer) {
				if on {
					fmt.Fprintf(w, "%s added to favorites\n", args[0])
				} else {
					fmt.Fprintf(w, "%s removed from favorites\n", args[0])
				}
			})
		},
	}

	cmd.AddCommand(toggle)
	return cmd
}
