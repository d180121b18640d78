package cmd

import (
	"errors"
	"fmt"

	"a_notes_go/backup"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Экспортировать все папки и заметки в JSON-файл",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := backup.ExportToFile(repo, args[0]); err != nil {
			return fmt.Errorf("Export Failed: %w", err)
		}
		fmt.Println("Export Successful!")
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Импортировать документ бэкапа (дополняет существующие данные)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := backup.ImportFromFile(repo, args[0]); err != nil {
			if errors.Is(err, backup.ErrNoData) {
				fmt.Println("No data found in file.")
				return nil
			}
			return fmt.Errorf("Import Failed: %w", err)
		}
		fmt.Println("Import Successful!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
