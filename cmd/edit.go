package cmd

import (
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	setWeight float64
	setReps   int
	removeSet bool
)

var editSetCmd = &cobra.Command{
	Use:   "edit-set [exercise-index] [set-index]",
	Short: "Edit or remove a set in the current session",
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
		entry := &draft.Entries[exIdx]

		setIdx, err := parseIndex(args[1], "set", len(entry.Sets))
		if err != nil {
			return err
		}

		if removeSet {
			entry.Sets = append(entry.Sets[:setIdx], entry.Sets[setIdx+1:]...)
		} else {
			set := &entry.Sets[setIdx]
			if cmd.Flags().Changed("weight") {
				set.LoadKg = setWeight
			}
			if cmd.Flags().Changed("reps") {
				set.Reps = setReps
			}
			if err := validateSet(set.Reps, set.LoadKg); err != nil {
				return err
			}
		}

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if removeSet {
			fmt.Println("✅ Set removed")
		} else {
			fmt.Println("✅ Set updated successfully")
		}
		return nil
	},
}

func init() {
	editSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "Load in kg")
	editSetCmd.Flags().IntVarP(&setReps, "reps", "r", 0, "Reps performed")
	editSetCmd.Flags().BoolVar(&removeSet, "remove", false, "Remove the set instead of editing it")

	rootCmd.AddCommand(editSetCmd)
}
