package cmd

import (
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	newSetWeight float64
	newSetReps   int
	newSetNote   string
)

var addSetCmd = &cobra.Command{
	Use:   "add-set [exercise-name | exercise-index]",
	Short: "Log a set for an exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := validateSet(newSetReps, newSetWeight); err != nil {
			return err
		}

		draft, err := utils.LoadDraft()
		if err != nil {
			return err
		}

		entry, ok := draftEntryByIndex(draft, args[0])
		if !ok {
			st, err := openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			ex, err := lookupExercise(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			entry = draft.EntryFor(ex.ID, ex.Name)
		}

		entry.Sets = append(entry.Sets, models.DraftSet{
			Reps:   newSetReps,
			LoadKg: newSetWeight,
			Note:   newSetNote,
		})

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ %s set %d: %s × %d\n",
			entry.ExerciseName, len(entry.Sets), utils.FormatKg(newSetWeight), newSetReps)
		return nil
	},
}

func init() {
	addSetCmd.Flags().Float64VarP(&newSetWeight, "weight", "w", 0, "Load in kg (0 for bodyweight)")
	addSetCmd.Flags().IntVarP(&newSetReps, "reps", "r", 0, "Number of reps performed")
	addSetCmd.Flags().StringVar(&newSetNote, "note", "", "Note for the set")
	addSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(addSetCmd)
}
