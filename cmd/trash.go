package cmd

import (
	"fmt"

	"a_notes_go/usecase"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash",
	Short: "Операции с корзиной",
}

var trashEmptyCmd = &cobra.Command{
	Use:   "empty",
	Short: "Безвозвратно удалить все заметки из корзины",
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := usecase.EmptyTrash(repo)
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d note(s)\n", removed)
		return nil
	},
}

func init() {
	trashCmd.AddCommand(trashEmptyCmd)
	rootCmd.AddCommand(trashCmd)
}
