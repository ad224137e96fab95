package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// Leaderboard fetches the contributor ranking. Rank is computed server-side;
// entries arrive in rank order.
func (c *Client) Leaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	var entries []models.LeaderboardEntry
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
