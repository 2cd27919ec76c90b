package cmd

import (
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index] [set-index]",
	Short: "Attach a note to a set in the current session, or to the session itself with no arguments",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return err
		}

		switch len(args) {
		case 0:
			draft.Notes = noteText
		case 1:
			return fmt.Errorf("Both an exercise index and a set index are needed")
		default:
			exIdx, err := parseIndex(args[0], "exercise", len(draft.Entries))
			if err != nil {
				return err
			}
			entry := &draft.Entries[exIdx]
			setIdx, err := parseIndex(args[1], "set", len(entry.Sets))
			if err != nil {
				return err
			}
			entry.Sets[setIdx].Note = noteText
		}

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
