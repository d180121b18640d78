package cmd

import (
	"os"
	"time"

	"a_notes_go/auth"
	"a_notes_go/config"
	"a_notes_go/data"
	"a_notes_go/pkg/log"
	"a_notes_go/repository"

	"github.com/spf13/cobra"
)

var (
	configPath string
	dbPath     string

	cfg  *config.Config
	repo *repository.Repository
)

var rootCmd = &cobra.Command{
	Use:   "anotes",
	Short: "Персональные заметки: сервер, список, бэкап",
	Long: `anotes — локальное однопользовательское приложение заметок:
папки, закрепление, архив, корзина, ручной порядок и JSON-бэкап.
Подкоманда serve поднимает HTTP API для мобильного клиента.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		log.SetupFromString(cfg.Log.Level)

		if dbPath != "" {
			cfg.Database.Path = dbPath
		}
		auth.Configure(cfg.Auth.JwtKey, time.Duration(cfg.Auth.TokenTTL)*time.Hour)

		if err := data.Init(cfg.Database.Path); err != nil {
			return err
		}
		repo = repository.New()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return data.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "путь к файлу конфигурации")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "путь к файлу базы данных (важнее конфигурации)")
}

// Execute запускает корневую команду CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
