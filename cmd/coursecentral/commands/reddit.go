package commands

import (
	"os"

	"coursecentral-backend/lib/serviceutil"
	"coursecentral-backend/services/reddit"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(redditCmd)
}

var redditCmd = &cobra.Command{
	Use:   "reddit",
	Short: "Collects course-discussion threads from the configured subreddit.",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		cfg := loadConfig()

		store, database := openStore(ctx, cfg)
		defer database.Close()

		client, err := reddit.NewClient(ctx, cfg.Reddit.ClientId, cfg.Reddit.ClientSecret)
		if err != nil {
			serviceutil.Fatal("failed to authenticate with reddit", err)
		}

		limit := cfg.Reddit.PostLimit
		if limit <= 0 {
			limit = 100
		}
		report, err := reddit.Run(ctx, reddit.RunContext{
			Store:     store,
			Client:    client,
			Subreddit: cfg.Reddit.Subreddit,
			PostLimit: limit,
		})
		renderRedditReport(report)
		if err != nil {
			serviceutil.Fatal("reddit run failed", err)
		}
		sendRunReport(cfg.Notify, "reddit", redditReportText(report))
	},
}

func renderRedditReport(report reddit.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Metric", "Count"})
	t.AppendRow(table.Row{"Posts listed", report.PostsListed})
	t.AppendRow(table.Row{"Posts of interest", report.PostsOfInterest})
	t.AppendRow(table.Row{"Posts already processed", report.PostsSkipped})
	t.AppendRow(table.Row{"Chunks extracted", report.ChunksExtracted})
	t.AppendRow(table.Row{"Chunks inserted", report.ChunksInserted})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
