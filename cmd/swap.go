package cmd

import (
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var swapExerciseCmd = &cobra.Command{
	Use:   "swap-ex [exercise-index] [new-exercise-name]",
	Short: "Move the sets of an exercise in the current session onto another exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return err
		}

		exIdx, err := parseIndex(args[0], "exercise", len(draft.Entries))
		if err != nil {
			return err
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		newExercise, err := lookupExercise(cmd.Context(), st, args[1])
		if err != nil {
			return err
		}

		for i, e := range draft.Entries {
			if i != exIdx && e.ExerciseID == newExercise.ID {
				return fmt.Errorf("%s is already part of this session", newExercise.Name)
			}
		}

		entry := &draft.Entries[exIdx]
		entry.ExerciseID = newExercise.ID
		entry.ExerciseName = newExercise.Name

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		fmt.Printf("✅ Swapped exercise to %s\n", newExercise.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(swapExerciseCmd)
}
