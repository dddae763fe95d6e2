// Command escala builds monthly shift schedules from the command line, either
// straight from a YAML rule file or from a roster stored by the bot.
package main

import (
	"fmt"
	"os"

	"github.com/diegoclair/escala-bot/internal/config"
	"github.com/diegoclair/escala-bot/internal/database"
	"github.com/diegoclair/escala-bot/internal/domain/service"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/diegoclair/escala-bot/internal/logger"
	"github.com/diegoclair/escala-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once flags are parsed
type app struct {
	cfg *config.Config
	log *zap.Logger

	dbPath    string
	outputDir string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "escala",
		Short: "Monthly shift schedules for retail teams",
		Long: `escala builds a month of shifts from weekday shifts, Sunday and vendor
rotations and fixed weekly days off, and writes it as a styled spreadsheet.

Rosters can come from a YAML rule file or from the bot's database.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			a.cfg = config.Load()

			if !cmd.Flags().Changed("db") {
				a.dbPath = a.cfg.DatabasePath
			}
			if !cmd.Flags().Changed("out") {
				a.outputDir = a.cfg.OutputDir
			}
			level := a.cfg.LogLevel
			if cmd.Flags().Changed("log-level") {
				level = a.logLevel
			}

			log, err := logger.New(level, "console")
			if err != nil {
				return err
			}
			a.log = log
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (default: DATABASE_PATH or ./escala.db)")
	rootCmd.PersistentFlags().StringVarP(&a.outputDir, "out", "o", "", "Output directory for spreadsheets (default: OUTPUT_DIR or ./output)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newGenerateCmd(a))
	rootCmd.AddCommand(newImportCmd(a))
	rootCmd.AddCommand(newExportCmd(a))

	return rootCmd
}

// openStore opens the roster database and wires the services on top of it.
// The returned func closes the database.
func (a *app) openStore() (*service.Instance, func(), error) {
	db, err := database.New(a.dbPath)
	if err != nil {
		return nil, nil, err
	}

	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	svc := service.NewInstance(
		database.NewInstance(db),
		slack.New(a.cfg.SlackBotToken),
		export.NewExporter(nil),
		a.outputDir,
		a.log,
	)

	return svc, func() { db.Close() }, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
