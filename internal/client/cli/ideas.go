package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// List prints the cached ideas, optionally filtered by pipeline stage:
//
//	list
//	list under_review
func (a *App) List(ctx context.Context, args []string) error {
	items := a.cache.All()

	if len(args) > 0 {
		status, err := models.ParseStatus(args[0])
		if err != nil {
			printlnFn("Usage: list [" + stageHint() + "]")
			return err
		}
		items = a.cache.ByStatus(status)
	}

	if len(items) == 0 {
		printlnFn("No ideas.")
		return nil
	}
	for _, idea := range items {
		printlnFn(formatIdeaRow(idea))
	}
	return nil
}

// Mine prints the logged-in user's own ideas.
func (a *App) Mine(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	items := a.cache.BySubmitter(u.EmployeeNumber)
	if len(items) == 0 {
		printlnFn("You have not submitted any ideas yet.")
		return nil
	}
	for _, idea := range items {
		printlnFn(formatIdeaRow(idea))
	}
	return nil
}

// Show prints the detail view of a single cached idea.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: show <id>")
		return nil
	}

	idea, ok := a.cache.Get(args[0])
	if !ok {
		printlnFn("No such idea:", args[0])
		return nil
	}
	printIdea(idea)
	return nil
}

// Submit prompts for a title and a multi-line description and creates the
// idea, then reloads the list so the stored record is visible.
func (a *App) Submit(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Idea title", os.Stdout)
	if err != nil {
		return err
	}

	description, err := GetMultiline(a.reader, "Describe the idea", os.Stdout)
	if err != nil {
		return err
	}

	idea, err := a.ideaService.Submit(ctx, title, description)
	if err != nil {
		printError(err)
		return err
	}

	printSuccess(fmt.Sprintf("Submitted as %s.", idea.ID))
	return a.Refresh(ctx)
}

// Refresh reloads the idea list from the server.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.cache.Load(ctx); err != nil {
		printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("%d ideas.", a.cache.Len()))
	return nil
}

// Status moves an idea to a new pipeline stage:
//
//	status 66b1f 'approved'
//
// The server enforces permissions; the command is only offered to reviewers
// and admins in help output.
func (a *App) Status(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: status <id> <" + stageHint() + ">")
		return nil
	}

	if err := a.ideaService.ChangeStatus(ctx, args[0], args[1]); err != nil {
		printError(err)
		return err
	}

	printSuccess("Status updated.")
	return a.Refresh(ctx)
}
