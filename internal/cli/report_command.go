package cli

import (
	"context"
	"fmt"

	"jobclock/internal/report"
)

// ReportCommand handles the report command
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute renders the weekly timesheet for the named job
func (c *ReportCommand) Execute(ctx context.Context, args []string) error {
	job, err := c.app.api.FindJobByName(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("find job", err)
	}

	weeks, err := c.app.api.WeekBuckets(ctx, job.ID)
	if err != nil {
		return c.errorHandler.Handle("build report", err)
	}

	sheet := report.Timesheet{
		JobName: job.Name,
		Weeks:   weeks,
		Format:  c.app.config.TimeFormat(),
		Now:     timeNow(),
	}
	fmt.Fprint(c.app.out, sheet.Render())
	return nil
}
