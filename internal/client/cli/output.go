package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	headerColor  = color.New(color.Bold)
)

// statusColors mirrors the stage palette used by the web client.
var statusColors = map[models.IdeaStatus]*color.Color{
	models.StatusUnderReview:  color.New(color.FgYellow),
	models.StatusApproved:     color.New(color.FgGreen),
	models.StatusImplementing: color.New(color.FgCyan),
	models.StatusImplemented:  color.New(color.FgBlue),
	models.StatusRejected:     color.New(color.FgRed),
}

func colorStatus(s models.IdeaStatus) string {
	if c, ok := statusColors[s]; ok {
		return c.Sprint(string(s))
	}
	return string(s)
}

func printError(err error) {
	printlnFn(errorColor.Sprint("Error: " + err.Error()))
}

func printSuccess(msg string) {
	printlnFn(successColor.Sprint(msg))
}

// formatIdeaRow renders one idea as a single list line.
func formatIdeaRow(idea models.Idea) string {
	return fmt.Sprintf("%s  [%s]  %s — %s",
		idea.ID, colorStatus(idea.Status), idea.Title, idea.SubmittedBy.Name)
}

// printIdea renders the full detail view of a single idea.
func printIdea(idea models.Idea) {
	printlnFn(headerColor.Sprint(idea.Title))
	printlnFn("ID:        " + idea.ID)
	printlnFn("Status:    " + colorStatus(idea.Status))
	printlnFn("Submitter: " + idea.SubmittedBy.Name + " (" + idea.SubmittedBy.EmployeeNumber + ")")
	if !idea.CreatedAt.IsZero() {
		printlnFn("Created:   " + idea.CreatedAt.Format("2006-01-02 15:04"))
	}
	if idea.Description != "" {
		printlnFn("")
		printlnFn(idea.Description)
	}
}

// stageHint lists the valid stage names for user-facing usage messages.
func stageHint() string {
	names := make([]string, 0, len(models.Statuses))
	for _, s := range models.Statuses {
		names = append(names, strings.ReplaceAll(string(s), " ", "_"))
	}
	return strings.Join(names, ", ")
}
