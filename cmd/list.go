package cmd

import (
	"fmt"
	"os"
	"time"

	"a_notes_go/models"
	"a_notes_go/usecase"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	listArchived bool
	listTrash    bool
	listFolderID int64
	listSearch   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать заметки таблицей",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			notes []models.Note
			err   error
		)

		switch {
		case listSearch != "":
			notes, err = usecase.SearchNotes(repo, listSearch)
		case listArchived:
			notes, err = repo.ListArchived()
		case listTrash:
			notes, err = repo.ListDeleted()
		case listFolderID != 0:
			notes, err = usecase.GetNotesByFolder(repo, listFolderID)
		default:
			notes, err = usecase.GetNotes(repo)
		}
		if err != nil {
			return err
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Title", "Folder", "Pinned", "Updated"})
		for _, n := range notes {
			folder := ""
			if n.FolderName != nil {
				folder = *n.FolderName
			}
			pinned := ""
			if n.IsPinned {
				pinned = "*"
			}
			updated := time.UnixMilli(n.Timestamp).Format("2006-01-02 15:04")
			t.AppendRow(table.Row{n.ID, n.Title, folder, pinned, updated})
		}
		t.Render()

		fmt.Printf("Всего: %d\n", len(notes))
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "показать архив")
	listCmd.Flags().BoolVar(&listTrash, "trash", false, "показать корзину")
	listCmd.Flags().Int64Var(&listFolderID, "folder", 0, "показать заметки папки")
	listCmd.Flags().StringVar(&listSearch, "search", "", "поиск по подстроке (с учётом регистра)")
	rootCmd.AddCommand(listCmd)
}
