package usecase

import (
	"context"
	"strings"

	"socialhub/pkg/logger"
	"socialhub/services/search/internal/entity"
	"socialhub/services/search/internal/repo/persistent"
)

// GenerationTracker remembers the newest request generation seen per caller.
type GenerationTracker interface {
	// Advance records gen and reports whether it is still the newest for caller.
	Advance(ctx context.Context, caller string, gen int64) (bool, error)
	IsCurrent(ctx context.Context, caller string, gen int64) (bool, error)
}

type SearchRequest struct {
	Caller     string
	Query      string
	Scope      string
	Generation *int64
}

type SearchUseCase interface {
	Search(ctx context.Context, req SearchRequest) (*entity.Response, error)
}

type searchUseCase struct {
	searchRepo  persistent.SearchRepository
	generations GenerationTracker
	logger      *logger.Logger
}

// NewSearchUseCase accepts a nil tracker, in which case every request is treated as current.
func NewSearchUseCase(searchRepo persistent.SearchRepository, generations GenerationTracker, logger *logger.Logger) SearchUseCase {
	return &searchUseCase{
		searchRepo:  searchRepo,
		generations: generations,
		logger:      logger,
	}
}

func staleResponse() *entity.Response {
	return &entity.Response{Stale: true, Results: []entity.Result{}}
}

func (uc *searchUseCase) Search(ctx context.Context, req SearchRequest) (*entity.Response, error) {
	scope, err := entity.ParseScope(req.Scope)
	if err != nil {
		return nil, err
	}

	if !uc.advance(ctx, req) {
		return staleResponse(), nil
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &entity.Response{Results: []entity.Result{}}, nil
	}

	results := []entity.Result{}

	if scope.IncludesPosts() {
		posts, err := uc.searchRepo.SearchPosts(ctx, query)
		if err != nil {
			uc.logger.Error("Post search for %q failed: %v", query, err)
			return nil, err
		}
		if err := uc.attachAuthors(ctx, posts); err != nil {
			return nil, err
		}
		for _, p := range posts {
			results = append(results, entity.Result{Kind: entity.KindPost, Post: p})
		}
	}

	if scope.IncludesUsers() {
		users, err := uc.searchRepo.SearchUsers(ctx, query)
		if err != nil {
			uc.logger.Error("User search for %q failed: %v", query, err)
			return nil, err
		}
		for _, u := range users {
			results = append(results, entity.Result{Kind: entity.KindUser, User: u})
		}
	}

	if !uc.isCurrent(ctx, req) {
		return staleResponse(), nil
	}

	return &entity.Response{Results: results}, nil
}

func (uc *searchUseCase) attachAuthors(ctx context.Context, posts []*entity.Post) error {
	seen := make(map[string]struct{}, len(posts))
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.UserID]; ok {
			continue
		}
		seen[p.UserID] = struct{}{}
		ids = append(ids, p.UserID)
	}

	authors, err := uc.searchRepo.GetAuthors(ctx, ids)
	if err != nil {
		uc.logger.Error("Failed to load search result authors: %v", err)
		return err
	}
	for _, p := range posts {
		p.Author = authors[p.UserID]
	}
	return nil
}

// advance and isCurrent fail open: a tracker outage never hides results.
func (uc *searchUseCase) advance(ctx context.Context, req SearchRequest) bool {
	if uc.generations == nil || req.Generation == nil || req.Caller == "" {
		return true
	}
	ok, err := uc.generations.Advance(ctx, req.Caller, *req.Generation)
	if err != nil {
		uc.logger.Warn("Search generation tracking unavailable: %v", err)
		return true
	}
	return ok
}

func (uc *searchUseCase) isCurrent(ctx context.Context, req SearchRequest) bool {
	if uc.generations == nil || req.Generation == nil || req.Caller == "" {
		return true
	}
	ok, err := uc.generations.IsCurrent(ctx, req.Caller, *req.Generation)
	if err != nil {
		uc.logger.Warn("Search generation tracking unavailable: %v", err)
		return true
	}
	return ok
}
