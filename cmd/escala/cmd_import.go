package main

import (
	"fmt"

	"github.com/diegoclair/escala-bot/internal/rulefile"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		rulesPath string
		channelID string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a YAML rule file into the roster of a channel",
		Long: `Replace the stored roster of a Slack channel with the employees and
rotations of a YAML rule file. The roster is created when the channel has none.`,
		Example: `  escala import --rules iguatemi.yaml --channel C0123456 --db ./escala.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rulefile.Load(rulesPath)
			if err != nil {
				return err
			}

			rules, err := f.RuleSet()
			if err != nil {
				return err
			}

			svc, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			roster, err := svc.Roster.ImportRuleSet(cmd.Context(), channelID, f.Name, rules)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d employees into roster %s (channel %s)\n",
				len(rules.Employees), roster.Name, roster.SlackChannelID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesPath, "rules", "r", "", "YAML rule file")
	cmd.Flags().StringVarP(&channelID, "channel", "c", "", "Slack channel id")
	_ = cmd.MarkFlagRequired("rules")
	_ = cmd.MarkFlagRequired("channel")

	return cmd
}

func newExportCmd(a *app) *cobra.Command {
	var channelID string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored roster of a channel as a YAML rule file",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeStore, err := a.openStore()
			if err != nil {
				return err
			}
			defer closeStore()

			roster, err := svc.Roster.GetRosterByChannel(channelID)
			if err != nil {
				return err
			}

			rules, err := svc.Roster.RuleSet(roster.ID)
			if err != nil {
				return err
			}

			return rulefile.FromRuleSet(roster.Name, rules).Encode(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&channelID, "channel", "c", "", "Slack channel id")
	_ = cmd.MarkFlagRequired("channel")

	return cmd
}
