package commands

import (
	"os"

	"coursecentral-backend/lib/serviceutil"
	"coursecentral-backend/services/catalog"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Collects the academic calendar and upserts every course.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig()

		store, database := openStore(ctx, cfg)
		defer database.Close()

		report, err := catalog.Run(ctx, catalog.RunContext{
			Store:     store,
			Client:    catalog.NewClient(),
			Faculties: catalog.DefaultFaculties,
		})
		renderCatalogReport(report)
		if err != nil {
			serviceutil.Fatal("catalog run failed", err)
		}
		sendRunReport(cfg.Notify, "catalog", catalogReportText(report))
	},
}

func renderCatalogReport(report catalog.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRow(table.Row{"Pages fetched", report.PagesFetched})
	t.AppendRow(table.Row{"Pages failed", report.PagesFailed})
	t.AppendRow(table.Row{"Courses scraped", report.Scraped})
	t.AppendRow(table.Row{"Parse failures", report.ParseFailures})
	t.AppendRow(table.Row{"Inserted", report.Inserted})
	t.AppendRow(table.Row{"Updated", report.Updated})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
