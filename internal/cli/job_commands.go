package cli

import (
	"context"
	"fmt"
	"strings"

	"jobclock/internal/domain"
)

// JobCommand handles the job add/ls/rename/rm subcommands
type JobCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewJobCommand creates a new job command handler
func NewJobCommand(app *App) *JobCommand {
	return &JobCommand{app: app, errorHandler: NewErrorHandler()}
}

// resolveJob looks up a job by name for commands that take a job argument.
func (c *JobCommand) resolveJob(ctx context.Context, name string) (*domain.Job, error) {
	job, err := c.app.api.FindJobByName(ctx, name)
	if err != nil {
		return nil, c.errorHandler.Handle("find job", err)
	}
	return job, nil
}

// Add creates a new job
func (c *JobCommand) Add(ctx context.Context, args []string) error {
	name := strings.Join(args, " ")
	job, err := c.app.api.CreateJob(ctx, name)
	if err != nil {
		return c.errorHandler.Handle("create job", err)
	}
	fmt.Fprintf(c.app.out, "Created job: %s\n", job.Name)
	return nil
}

// List prints all jobs with their running state
func (c *JobCommand) List(ctx context.Context, args []string) error {
	jobs, err := c.app.api.ListJobs(ctx)
	if err != nil {
		return c.errorHandler.Handle("list jobs", err)
	}
	if len(jobs) == 0 {
		fmt.Fprintln(c.app.out, "No jobs yet. Create one with: jobclock job add <name>")
		return nil
	}

	for _, job := range jobs {
		status := ""
		if active, err := c.app.api.ActiveEntry(ctx, job.ID); err == nil && active != nil {
			status = "  (timer running)"
		}
		fmt.Fprintf(c.app.out, "%s%s\n", job.Name, status)
	}
	return nil
}

// Rename changes a job's name
func (c *JobCommand) Rename(ctx context.Context, args []string) error {
	job, err := c.resolveJob(ctx, args[0])
	if err != nil {
		return err
	}
	newName := strings.Join(args[1:], " ")
	if err := c.app.api.RenameJob(ctx, job.ID, newName); err != nil {
		return c.errorHandler.Handle("rename job", err)
	}
	fmt.Fprintf(c.app.out, "Renamed job %q to %q\n", job.Name, newName)
	return nil
}

// Remove deletes a job and all of its time entries
func (c *JobCommand) Remove(ctx context.Context, args []string) error {
	job, err := c.resolveJob(ctx, args[0])
	if err != nil {
		return err
	}
	if err := c.app.api.DeleteJob(ctx, job.ID); err != nil {
		return c.errorHandler.Handle("delete job", err)
	}
	fmt.Fprintf(c.app.out, "Deleted job %q and all of its time entries\n", job.Name)
	return nil
}
