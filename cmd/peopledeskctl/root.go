package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/code-hero23/peopledesk-sub002/internal/app"
	"github.com/code-hero23/peopledesk-sub002/internal/config"
	"github.com/code-hero23/peopledesk-sub002/internal/shared/apperror"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// flags dibaca lewat viper supaya bisa juga diisi env PEOPLEDESKCTL_*.
var flags = viper.New()

var rootCmd = &cobra.Command{
	Use:   "peopledeskctl",
	Short: "PeopleDesk maintenance commands",
	Long:  `Perintah operasional untuk PeopleDesk: import payroll manual, perbaikan data, dan job housekeeping.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		apperror.Init()
		return flags.BindPFlags(cmd.Flags())
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	flags.SetEnvPrefix("PEOPLEDESKCTL")
	flags.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	flags.AutomaticEnv()

	rootCmd.PersistentFlags().String("config-dir", ".", "directory containing config.yml")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importPayrollCmd)
	rootCmd.AddCommand(closeStaleBreaksCmd)
	rootCmd.AddCommand(fixLimitsCmd)
	rootCmd.AddCommand(blockAbsenteesCmd)
	rootCmd.AddCommand(remindCheckoutsCmd)
}

// openServices memuat config dan membangun service tanpa HTTP layer.
func openServices(withRedis bool) (*app.Infra, *app.Services, error) {
	cfg, err := config.Load(flags.GetString("config-dir"))
	if err != nil {
		return nil, nil, err
	}
	infra, err := app.Connect(cfg, withRedis)
	if err != nil {
		return nil, nil, err
	}
	svc, err := app.NewServices(infra, zap.L())
	if err != nil {
		infra.Close()
		return nil, nil, err
	}
	return infra, svc, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func periodFlags(cmd *cobra.Command) {
	cmd.Flags().Int("month", 0, "cycle month (1-12)")
	cmd.Flags().Int("year", 0, "cycle year")
}

func requirePeriod() (int, int, error) {
	month, year := flags.GetInt("month"), flags.GetInt("year")
	if month < 1 || month > 12 || year < 2000 {
		return 0, 0, fmt.Errorf("--month and --year are required (got %d/%d)", month, year)
	}
	return month, year, nil
}
