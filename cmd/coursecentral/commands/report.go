package commands

import (
	"fmt"
	"log/slog"
	"net/smtp"
	"time"

	"coursecentral-backend/services/catalog"
	"coursecentral-backend/services/reddit"
	"coursecentral-backend/services/rmp"

	"github.com/jordan-wright/email"
)

// sendRunReport mails a plain-text run summary when a notify address is
// configured. Reporting is best effort: a send failure only warns.
func sendRunReport(cfg EmailConfig, command, body string) {
	if cfg.ReportTo == "" {
		return
	}

	mail := email.NewEmail()
	mail.From = fmt.Sprintf("CourseCentral <%s>", cfg.EmailAddress)
	mail.To = []string{cfg.ReportTo}
	mail.Subject = fmt.Sprintf("coursecentral %s run, %s", command, time.Now().Format("2006-01-02"))
	mail.Text = []byte(body)

	err := mail.Send(
		fmt.Sprintf("%s:%d", cfg.Server, cfg.Port),
		smtp.PlainAuth("", cfg.EmailAddress, cfg.Password, cfg.Server),
	)
	if err != nil {
		slog.Warn("failed to send run report", "command", command, "err", err)
	}
}

func catalogReportText(report catalog.Report) string {
	return fmt.Sprintf(
		"pages fetched: %d\npages failed: %d\ncourses scraped: %d\nparse failures: %d\ninserted: %d\nupdated: %d\n",
		report.PagesFetched, report.PagesFailed, report.Scraped,
		report.ParseFailures, report.Inserted, report.Updated,
	)
}

func redditReportText(report reddit.Report) string {
	return fmt.Sprintf(
		"posts listed: %d\nposts of interest: %d\nposts already processed: %d\nchunks extracted: %d\nchunks inserted: %d\n",
		report.PostsListed, report.PostsOfInterest, report.PostsSkipped,
		report.ChunksExtracted, report.ChunksInserted,
	)
}

func rmpReportText(report rmp.Report) string {
	return fmt.Sprintf(
		"professors listed: %d\ncandidates: %d\npages failed: %d\nparse failures: %d\nchunks inserted: %d\n",
		report.ProfessorsListed, report.Candidates, report.PagesFailed,
		report.ParseFailures, report.ChunksInserted,
	)
}
