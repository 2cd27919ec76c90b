package cmd

import (
	"fmt"

	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End the current training session and save it",
	RunE: func(cmd *cobra.Command, args []string) error {
		draft, err := utils.LoadDraft()
		if err != nil {
			return err
		}

		skipped := len(draft.Entries)
		draft.Entries = withSets(draft.Entries)
		skipped -= len(draft.Entries)
		if len(draft.Entries) == 0 {
			return fmt.Errorf("The session has no sets, log some with add-set or use cancel-session")
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.SaveSession(cmd.Context(), draft); err != nil {
			logrus.WithError(err).WithField("session", draft.SessionID).Error("save session")
			return fmt.Errorf("Failed to save session: %w", err)
		}

		if err := utils.ClearDraft(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		if skipped > 0 {
			fmt.Printf("↷ Skipped %d exercises without sets\n", skipped)
		}
		fmt.Println("✅ Session saved successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
