package cli

import (
	"context"
	"fmt"
)

// Leaderboard prints the contributor ranking. Entries arrive in rank order;
// the rank shown is the position in the response.
func (a *App) Leaderboard(ctx context.Context) error {
	entries, err := a.api.Leaderboard(ctx)
	if err != nil {
		printError(err)
		return err
	}

	if len(entries) == 0 {
		printlnFn("Leaderboard is empty.")
		return nil
	}

	printlnFn(headerColor.Sprint("Rank  Points  Ideas  Name"))
	for i, e := range entries {
		printlnFn(fmt.Sprintf("%4d  %6d  %5d  %s (%s)",
			i+1, e.CreditPoints, e.IdeasSubmitted, e.Name, e.EmployeeNumber))
	}
	return nil
}
