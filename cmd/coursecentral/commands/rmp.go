package commands

import (
	"os"

	"coursecentral-backend/lib/serviceutil"
	"coursecentral-backend/services/rmp"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rmpCmd)
}

var rmpCmd = &cobra.Command{
	Use:   "rmp",
	Short: "Collects new professor reviews from a directory of rendered page dumps.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig()

		store, database := openStore(ctx, cfg)
		defer database.Close()

		report, err := rmp.Run(ctx, rmp.RunContext{
			Store:   store,
			Pages:   rmp.FsPages{Dir: cfg.Rmp.PagesDir},
			BaseURL: cfg.Rmp.BaseUrl,
		})
		renderRmpReport(report)
		if err != nil {
			serviceutil.Fatal("review collection run failed", err)
		}
		sendRunReport(cfg.Notify, "rmp", rmpReportText(report))
	},
}

func renderRmpReport(report rmp.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRow(table.Row{"Professors listed", report.ProfessorsListed})
	t.AppendRow(table.Row{"Candidates", report.Candidates})
	t.AppendRow(table.Row{"Pages failed", report.PagesFailed})
	t.AppendRow(table.Row{"Parse failures", report.ParseFailures})
	t.AppendRow(table.Row{"Chunks inserted", report.ChunksInserted})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
