package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// ListIdeas fetches every idea visible to the current session. Server-side
// filtering and authorization apply; the client does not filter by permission.
func (c *Client) ListIdeas(ctx context.Context) ([]models.Idea, error) {
	var ideas []models.Idea
	if err := c.do(ctx, http.MethodGet, "/api/ideas", nil, &ideas); err != nil {
		return nil, err
	}
	return ideas, nil
}

// SubmitIdea creates a new improvement idea and returns the stored record.
func (c *Client) SubmitIdea(ctx context.Context, title, description string) (*models.Idea, error) {
	var idea models.Idea
	err := c.do(ctx, http.MethodPost, "/api/ideas",
		map[string]string{"title": title, "description": description}, &idea)
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// UpdateIdeaStatus moves an idea to a new pipeline stage.
func (c *Client) UpdateIdeaStatus(ctx context.Context, id string, status models.IdeaStatus) error {
	path := "/api/ideas/" + url.PathEscape(id) + "/status"
	return c.do(ctx, http.MethodPut, path, map[string]string{"status": string(status)}, nil)
}
