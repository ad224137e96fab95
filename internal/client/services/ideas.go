package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/ideatrack/internal/client/ideas"
	"github.com/dmitrijs2005/ideatrack/internal/client/models"
)

// SubmitAPI is the remote surface for creating ideas.
type SubmitAPI interface {
	SubmitIdea(ctx context.Context, title, description string) (*models.Idea, error)
}

// IdeaService wraps idea submission and admin triage on top of the cache.
type IdeaService interface {
	Submit(ctx context.Context, title, description string) (*models.Idea, error)
	ChangeStatus(ctx context.Context, id, rawStatus string) error
}

type ideaService struct {
	api      SubmitAPI
	cache    *ideas.Cache
	validate *validator.Validate
}

func NewIdeaService(a SubmitAPI, cache *ideas.Cache) IdeaService {
	return &ideaService{api: a, cache: cache, validate: validator.New()}
}

type submitRequest struct {
	Title       string `validate:"required,max=120"`
	Description string `validate:"required,max=2000"`
}

// Submit validates and creates a new idea. The cache is not updated here;
// callers reload to see the stored record.
func (s *ideaService) Submit(ctx context.Context, title, description string) (*models.Idea, error) {
	req := submitRequest{Title: title, Description: description}
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid idea: %w", err)
	}
	return s.api.SubmitIdea(ctx, title, description)
}

// ChangeStatus parses the raw stage name and issues the remote mutation.
// The caller is expected to reload the cache to observe the change.
func (s *ideaService) ChangeStatus(ctx context.Context, id, rawStatus string) error {
	status, err := models.ParseStatus(rawStatus)
	if err != nil {
		return err
	}
	return s.cache.UpdateStatus(ctx, id, status)
}
