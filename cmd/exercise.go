package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	exerciseName     string
	exerciseKind     string
	exerciseFavorite bool
	unfavorite       bool
)

var addExerciseCmd = &cobra.Command{
	Use:   "add-exercise",
	Short: "Create a new exercise",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercise := models.Exercise{
			Name:     exerciseName,
			Kind:     models.ParseExerciseKind(exerciseKind),
			Favorite: exerciseFavorite,
		}
		if err := st.CreateExercise(cmd.Context(), exercise); err != nil {
			return fmt.Errorf("Failed to create exercise: %w", err)
		}

		fmt.Printf("✅ Created exercise: %s\n", strings.TrimSpace(exercise.Name))
		return nil
	},
}

var importExercisesCmd = &cobra.Command{
	Use:   "import-exercises [file]",
	Short: "Import exercises from TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		defs, err := utils.ParseExercisesFromTOML(args[0])
		if err != nil {
			return fmt.Errorf("failed to read exercises: %w", err)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		created := 0
		for _, def := range defs {
			exists, err := st.ExerciseExists(cmd.Context(), def.Name)
			if err != nil {
				return err
			}
			if exists {
				fmt.Printf("↷ Skipping %s (already exists)\n", def.Name)
				continue
			}

			ex := models.Exercise{
				Name:     def.Name,
				Kind:     models.ParseExerciseKind(def.Kind),
				Favorite: def.Favorite,
			}
			if err := st.CreateExercise(cmd.Context(), ex); err != nil {
				return fmt.Errorf("failed to create exercise %s: %w", def.Name, err)
			}
			created++
		}

		fmt.Printf("✅ Imported %d exercises\n", created)
		return nil
	},
}

var listExercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List exercises, favorites first, then most recently used",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		exercises, err := st.ListExercises(cmd.Context())
		if err != nil {
			return err
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises yet. Add one with 'gymlog add-exercise -n <name>'.")
			return nil
		}

		loc := newEngine().Location()
		yellow := color.New(color.FgYellow).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		for _, ex := range exercises {
			star := " "
			if ex.Favorite {
				star = yellow("★")
			}
			lastUsed := "never"
			if ex.LastUsedAt != nil {
				lastUsed = utils.FormatDay(*ex.LastUsedAt, loc)
			}
			fmt.Printf("%s %-30s %-20s %s\n", star, ex.Name, ex.Kind.DisplayName(), faint(lastUsed))
		}
		return nil
	},
}

var renameExerciseCmd = &cobra.Command{
	Use:   "rename-exercise [old-name] [new-name]",
	Short: "Rename an exercise, keeping its history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.RenameExercise(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("Failed to rename exercise: %w", err)
		}
		fmt.Printf("✅ Renamed %s to %s\n", args[0], args[1])
		return nil
	},
}

var mergeExerciseCmd = &cobra.Command{
	Use:   "merge-exercise [from] [into]",
	Short: "Move all history of one exercise onto another and delete the first",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.MergeExercises(cmd.Context(), args[0], args[1]); err != nil {
			return fmt.Errorf("Failed to merge exercises: %w", err)
		}
		fmt.Printf("✅ Merged %s into %s\n", args[0], args[1])
		return nil
	},
}

var favoriteCmd = &cobra.Command{
	Use:   "favorite [exercise-name]",
	Short: "Mark an exercise as favorite (use --off to clear)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SetFavorite(cmd.Context(), args[0], !unfavorite); err != nil {
			return fmt.Errorf("Failed to update favorite: %w", err)
		}
		if unfavorite {
			fmt.Printf("✅ %s is no longer a favorite\n", args[0])
		} else {
			fmt.Printf("✅ %s marked as favorite\n", args[0])
		}
		return nil
	},
}

func init() {
	addExerciseCmd.Flags().StringVarP(&exerciseName, "name", "n", "", "Exercise name")
	addExerciseCmd.Flags().StringVarP(&exerciseKind, "kind", "k", "weighted", "weighted, bodyweight or bodyweight_plus_load")
	addExerciseCmd.Flags().BoolVarP(&exerciseFavorite, "favorite", "f", false, "Mark as favorite")
	addExerciseCmd.MarkFlagRequired("name")

	favoriteCmd.Flags().BoolVar(&unfavorite, "off", false, "Remove the favorite mark")

	rootCmd.AddCommand(addExerciseCmd)
	rootCmd.AddCommand(importExercisesCmd)
	rootCmd.AddCommand(listExercisesCmd)
	rootCmd.AddCommand(renameExerciseCmd)
	rootCmd.AddCommand(mergeExerciseCmd)
	rootCmd.AddCommand(favoriteCmd)
}
