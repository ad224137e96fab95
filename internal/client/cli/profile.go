package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// Profile prints the logged-in user record plus a per-stage breakdown of
// their own ideas.
func (a *App) Profile(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		printlnFn("Not logged in.")
		return nil
	}

	printlnFn(headerColor.Sprint(fmt.Sprintf("%s  %s", u.Initials(), u.Name)))
	printlnFn("Employee #: " + u.EmployeeNumber)
	printlnFn("Role:       " + string(u.Role))
	if u.Department != "" {
		printlnFn("Department: " + u.Department)
	}
	if u.Designation != "" {
		printlnFn("Title:      " + u.Designation)
	}
	if !u.CreatedAt.IsZero() {
		printlnFn("Joined:     " + u.CreatedAt.Format("2006-01-02"))
	}
	printlnFn(fmt.Sprintf("Credits:    %d", u.CreditPoints))

	mine := a.cache.BySubmitter(u.EmployeeNumber)
	if len(mine) == 0 {
		return nil
	}

	counts := make(map[models.IdeaStatus]int)
	for _, idea := range mine {
		counts[idea.Status]++
	}

	printlnFn("")
	printlnFn(fmt.Sprintf("Ideas:      %d", len(mine)))
	for _, s := range models.Statuses {
		if counts[s] > 0 {
			printlnFn(fmt.Sprintf("  %s: %d", colorStatus(s), counts[s]))
		}
	}
	return nil
}
