package main

import (
	"errors"
	"fmt"
	"time"

	slackcmd "github.com/diegoclair/escala-bot/internal/domain/slack"
	"github.com/diegoclair/escala-bot/internal/domain/schedule"
	"github.com/diegoclair/escala-bot/internal/export"
	"github.com/diegoclair/escala-bot/internal/rulefile"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		rulesPath string
		channelID string
		month     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the schedule spreadsheet for a month",
		Long: `Generate a month of shifts and save it as Escala_<MONTH>_<YEAR>_<ROSTER>.xlsx.

The roster comes from --rules (a YAML rule file, no database needed) or
from --channel (a roster stored by the bot).`,
		Example: `  escala generate --rules iguatemi.yaml --month 2024-09 --out ./output
  escala generate --channel C0123456 --month 2024-09`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (rulesPath == "") == (channelID == "") {
				return errors.New("use exactly one of --rules or --channel")
			}

			year, m, err := slackcmd.ParseMonth(month)
			if err != nil {
				return err
			}

			if rulesPath != "" {
				return a.generateFromFile(cmd, rulesPath, year, m)
			}
			return a.generateFromStore(cmd, channelID, year, m)
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML rule file")
	cmd.Flags().StringVarP(&channelID, "channel", "c", "", "Slack channel id of a stored roster")
	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to generate, YYYY-MM")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

func (a *app) generateFromFile(cmd *cobra.Command, path string, year, month int) error {
	f, err := rulefile.Load(path)
	if err != nil {
		return err
	}

	rules, err := f.RuleSet()
	if err != nil {
		return err
	}

	grid, err := schedule.Build(year, time.Month(month), rules)
	if err != nil {
		return err
	}
	stats := schedule.ComputeStats(grid)

	for _, o := range grid.Overrides {
		a.log.Warn("day off replaced a rotation shift",
			zap.String("employee", o.Employee),
			zap.Time("date", o.Date),
		)
	}

	file, err := export.NewExporter(nil).Save(a.outputDir, f.Name, grid, stats)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), export.Summary(f.Name, grid, stats))
	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %s\n", file)
	return nil
}

func (a *app) generateFromStore(cmd *cobra.Command, channelID string, year, month int) error {
	svc, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	roster, err := svc.Roster.GetRosterByChannel(channelID)
	if err != nil {
		return err
	}

	result, err := svc.Schedule.GenerateSchedule(cmd.Context(), roster.ID, year, month)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), export.Summary(result.RosterName, result.Grid, result.Stats))
	fmt.Fprintf(cmd.OutOrStdout(), "\nSaved %s\n", result.FilePath)
	return nil
}
