package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"linkup/internal/models"
	"linkup/internal/repository"
)

// PostService provides post business logic.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost validates and stores a new post for the author.
func (s *PostService) CreatePost(ctx context.Context, userID uint, content string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	length := utf8.RuneCountInString(content)
	if length < models.MinPostLen {
		return nil, models.NewValidationError("Post content must be at least 14 characters")
	}
	if length > models.MaxPostLen {
		return nil, models.NewValidationError("Post content must be at most 1000 characters")
	}

	post := &models.Post{
		UserID:  userID,
		Content: content,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID, userID)
}

// GetPost loads a single post with its counts as seen by the viewer.
func (s *PostService) GetPost(ctx context.Context, postID, viewerID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID, viewerID)
}

// DeletePost removes a post. Only the author may delete it.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID, 0)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("Only the author can delete this post")
	}
	return s.postRepo.Delete(ctx, postID)
}

// LikeResult carries the post's like count after a like or unlike.
type LikeResult struct {
	PostID uint  `json:"postId"`
	Likes  int64 `json:"likes"`
	Liked  bool  `json:"liked"`
}

// Like records a like. Repeating it is a no-op, the returned count is
// accurate either way.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	if err := s.postRepo.Like(ctx, userID, postID); err != nil {
		return nil, err
	}
	count, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{PostID: postID, Likes: count, Liked: true}, nil
}

// Unlike removes a like. Removing a like that is not there is a no-op.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) (*LikeResult, error) {
	if _, err := s.postRepo.GetByID(ctx, postID, 0); err != nil {
		return nil, err
	}
	if err := s.postRepo.Unlike(ctx, userID, postID); err != nil {
		return nil, err
	}
	count, err := s.postRepo.LikeCount(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{PostID: postID, Likes: count, Liked: false}, nil
}

// ShareResult carries the post's share count after a share.
type ShareResult struct {
	PostID uint  `json:"postId"`
	Shares int64 `json:"shares"`
}

// Share bumps the post's share counter.
func (s *PostService) Share(ctx context.Context, postID uint) (*ShareResult, error) {
	shares, err := s.postRepo.IncrementShares(ctx, postID)
	if err != nil {
		return nil, err
	}
	return &ShareResult{PostID: postID, Shares: shares}, nil
}
