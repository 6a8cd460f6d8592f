package service

import (
	"context"

	"linkup/internal/cache"
	"linkup/internal/middleware"
	"linkup/internal/models"
	"linkup/internal/repository"
)

const (
	defaultFeedPage  = 1
	defaultFeedLimit = 10
	maxFeedLimit     = 100
)

// FeedService assembles paginated feeds out of the post ledger.
type FeedService struct {
	postRepo  repository.PostRepository
	graphRepo repository.GraphRepository
	userRepo  repository.UserRepository
}

// NewFeedService returns a new FeedService.
func NewFeedService(postRepo repository.PostRepository, graphRepo repository.GraphRepository, userRepo repository.UserRepository) *FeedService {
	return &FeedService{
		postRepo:  postRepo,
		graphRepo: graphRepo,
		userRepo:  userRepo,
	}
}

// NormalizePagination clamps page and limit to their allowed ranges.
func NormalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultFeedPage
	}
	if limit < 1 {
		limit = defaultFeedLimit
	}
	if limit > maxFeedLimit {
		limit = maxFeedLimit
	}
	return page, limit
}

// PublicFeed returns one page of posts from non-private accounts, newest
// first. Pages past the end come back empty, not as errors.
func (s *FeedService) PublicFeed(ctx context.Context, page, limit int) (*models.FeedPage, error) {
	page, limit = NormalizePagination(page, limit)
	middleware.FeedRequests.WithLabelValues("public").Inc()

	var cached models.FeedPage
	if cache.GetJSON(ctx, cache.PublicFeedKey(page, limit), &cached) {
		return &cached, nil
	}

	posts, total, err := s.postRepo.PublicFeed(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	result := buildFeedPage(posts, page, limit, total)
	cache.SetJSON(ctx, cache.PublicFeedKey(page, limit), result, cache.PublicFeedTTL)
	return result, nil
}

// FollowingFeed returns one page of posts authored by accounts the given
// user follows.
func (s *FeedService) FollowingFeed(ctx context.Context, userID uint, page, limit int) (*models.FeedPage, error) {
	page, limit = NormalizePagination(page, limit)
	middleware.FeedRequests.WithLabelValues("following").Inc()

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	followed, err := s.graphRepo.ListFollowingIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	posts, total, err := s.postRepo.FollowingFeed(ctx, followed, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}
	return buildFeedPage(posts, page, limit, total), nil
}

func buildFeedPage(posts []*models.Post, page, limit int, total int64) *models.FeedPage {
	items := make([]models.FeedPost, 0, len(posts))
	for _, p := range posts {
		items = append(items, models.FeedPost{
			ID:            p.ID,
			Author:        p.User.Summary(),
			Content:       p.Content,
			Shares:        p.Shares,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			CreatedAt:     p.CreatedAt,
		})
	}

	totalPages := int(total / int64(limit))
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &models.FeedPage{
		Posts:      items,
		Page:       page,
		TotalPages: totalPages,
		TotalPosts: total,
	}
}
