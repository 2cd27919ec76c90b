package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var importTemplateCmd = &cobra.Command{
	Use:   "import-template [file]",
	Short: "Create or replace a session template from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		tmpl, err := st.CreateTemplate(cmd.Context(), file)
		if err != nil {
			return fmt.Errorf("failed to import template: %w", err)
		}

		fmt.Printf("✅ Template '%s' saved with %d exercises\n", tmpl.Name, len(tmpl.Items))
		return nil
	},
}

var listTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List session templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		templates, err := st.ListTemplates(cmd.Context())
		if err != nil {
			return err
		}
		if len(templates) == 0 {
			fmt.Println("No templates yet. Import one with 'gymlog import-template <file>'.")
			return nil
		}

		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		for _, t := range templates {
			names := make([]string, 0, len(t.Items))
			for _, item := range t.Items {
				names = append(names, item.ExerciseName)
			}
			fmt.Printf("%s\n  %s\n", green(t.Name), strings.Join(names, " → "))
		}
		return nil
	},
}

var deleteTemplateCmd = &cobra.Command{
	Use:   "delete-template [name]",
	Short: "Delete a session template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStorage()
		if err != nil {
			return err
		}
		defer st.Close()

		if err := st.DeleteTemplateByName(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("Failed to delete template: %w", err)
		}

		fmt.Printf("✅ Template '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importTemplateCmd)
	rootCmd.AddCommand(listTemplatesCmd)
	rootCmd.AddCommand(deleteTemplateCmd)
}
