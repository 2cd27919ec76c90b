package cmd

import (
	"fmt"
	"time"

	"github.com/misterclayt0n/gymlog/internal/models"
	"github.com/misterclayt0n/gymlog/internal/utils"
	"github.com/spf13/cobra"
)

var (
	templateName string
	sessionDate  string
	sessionNotes string
)

var startCmd = &cobra.Command{
	Use:   "start-session",
	Short: "Starts a new training session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.DraftExists() {
			return fmt.Errorf("A session is already in progress, end or cancel it first")
		}

		date := time.Now()
		if sessionDate != "" {
			var err error
			date, err = utils.ParseDate(sessionDate, newEngine().Location())
			if err != nil {
				return err
			}
		}

		draft := &models.DraftSession{
			SessionID:    models.NewSessionID(),
			Date:         date,
			Notes:        sessionNotes,
			TemplateName: templateName,
		}

		if templateName != "" {
			st, err := openStorage()
			if err != nil {
				return err
			}
			defer st.Close()

			tmpl, err := st.GetTemplateByName(cmd.Context(), templateName)
			if err != nil {
				return fmt.Errorf("Failed to start session: %w", err)
			}
			for _, item := range tmpl.Items {
				draft.EntryFor(item.ExerciseID, item.ExerciseName)
			}
		}

		if err := utils.SaveDraft(draft); err != nil {
			return fmt.Errorf("Failed to save session state: %w", err)
		}

		fmt.Printf("✅ Started session %s\n", draft.SessionID)
		return nil
	},
}

func init() {
	// Registers the command as a subcommand of rootCmd.
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&templateName, "template", "t", "", "Seed the session from a template")
	startCmd.Flags().StringVarP(&sessionDate, "date", "d", "", "Session date (YYYY-MM-DD [HH:MM]), defaults to now")
	startCmd.Flags().StringVarP(&sessionNotes, "notes", "n", "", "Session notes")
}
