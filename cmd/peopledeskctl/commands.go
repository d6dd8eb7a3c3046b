package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/code-hero23/peopledesk-sub002/internal/app"
	"github.com/code-hero23/peopledesk-sub002/internal/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "create or update all tables",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flags.GetString("config-dir"))
		if err != nil {
			return err
		}
		infra, err := app.Connect(cfg, false)
		if err != nil {
			return err
		}
		defer infra.Close()

		if err := app.Migrate(infra.GormDB); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migration done")
		return nil
	},
}

var importPayrollCmd = &cobra.Command{
	Use:   "import-payroll",
	Short: "import manual payroll figures from an xlsx or csv file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		month, year, err := requirePeriod()
		if err != nil {
			return err
		}
		path := flags.GetString("file")
		if path == "" {
			return fmt.Errorf("--file is required")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		infra, svc, err := openServices(true)
		if err != nil {
			return err
		}
		defer infra.Close()

		res, err := svc.Payroll.ImportManual(cmd.Context(), flags.GetString("actor"), data, filepath.Base(path), month, year)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

var closeStaleBreaksCmd = &cobra.Command{
	Use:   "close-stale-breaks",
	Short: "close breaks left open from previous days",
	RunE: func(cmd *cobra.Command, _ []string) error {
		infra, svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer infra.Close()

		n, err := svc.Attendance.CloseStaleBreaks(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		return printJSON(cmd, map[string]int{"closed": n})
	},
}

var fixLimitsCmd = &cobra.Command{
	Use:   "fix-limits",
	Short: "recompute the exceeded-limit flag on leaves and permissions of a cycle",
	RunE: func(cmd *cobra.Command, _ []string) error {
		month, year, err := requirePeriod()
		if err != nil {
			return err
		}

		infra, svc, err := openServices(false)
		if err != nil {
			return err
		}
		defer infra.Close()

		res, err := svc.Requests.RecomputeLimits(cmd.Context(), month, year)
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

var blockAbsenteesCmd = &cobra.Command{
	Use:   "block-absentees",
	Short: "run the absence auto-block job once",
	RunE: func(cmd *cobra.Command, _ []string) error {
		infra, svc, err := openServices(true)
		if err != nil {
			return err
		}
		defer infra.Close()

		res, err := app.NewJobs(svc, infra.Config, nil).BlockAbsentees(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

var remindCheckoutsCmd = &cobra.Command{
	Use:   "remind-checkouts",
	Short: "email employees who have not checked out today",
	RunE: func(cmd *cobra.Command, _ []string) error {
		infra, svc, err := openServices(true)
		if err != nil {
			return err
		}
		defer infra.Close()

		res, err := app.NewJobs(svc, infra.Config, nil).RemindMissingCheckouts(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		return printJSON(cmd, res)
	},
}

func init() {
	periodFlags(importPayrollCmd)
	importPayrollCmd.Flags().String("file", "", "path to the .xlsx or .csv file")
	importPayrollCmd.Flags().String("actor", "", "user id recorded as importer")

	periodFlags(fixLimitsCmd)
}
