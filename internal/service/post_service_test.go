package service

import (
	"context"
	"strings"
	"testing"

	"linkup/internal/models"
)

func TestCreatePostTooShort(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())
	_, err := svc.CreatePost(context.Background(), 1, "short")
	assertAppError(t, err, models.CodeValidation)
}

func TestCreatePostWhitespaceDoesNotCount(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())
	// Padding cannot buy length
	_, err := svc.CreatePost(context.Background(), 1, "   hi   \n\t        ")
	assertAppError(t, err, models.CodeValidation)
}

func TestCreatePostTooLong(t *testing.T) {
	svc := NewPostService(noopPostRepo(), noopUserRepo())
	_, err := svc.CreatePost(context.Background(), 1, strings.Repeat("a", models.MaxPostLen+1))
	assertAppError(t, err, models.CodeValidation)
}

func TestCreatePostBoundaries(t *testing.T) {
	posts := noopPostRepo()
	svc := NewPostService(posts, noopUserRepo())

	for _, n := range []int{models.MinPostLen, models.MaxPostLen} {
		if _, err := svc.CreatePost(context.Background(), 1, strings.Repeat("x", n)); err != nil {
			t.Errorf("content of %d characters rejected: %v", n, err)
		}
	}
}

func TestCreatePostMultibyteRunesCountOnce(t *testing.T) {
	posts := noopPostRepo()
	svc := NewPostService(posts, noopUserRepo())

	// 14 runes, far more than 14 bytes
	if _, err := svc.CreatePost(context.Background(), 1, strings.Repeat("é", models.MinPostLen)); err != nil {
		t.Errorf("14 multibyte runes rejected: %v", err)
	}
}

func TestDeletePostAuthorOnly(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return &models.Post{ID: id, UserID: 7}, nil
	}
	svc := NewPostService(posts, noopUserRepo())

	err := svc.DeletePost(context.Background(), 8, 1)
	assertAppError(t, err, models.CodeForbidden)

	if err := svc.DeletePost(context.Background(), 7, 1); err != nil {
		t.Fatalf("author delete: %v", err)
	}
}

func TestLikeReturnsCount(t *testing.T) {
	posts := noopPostRepo()
	posts.likeCountFn = func(context.Context, uint) (int64, error) { return 5, nil }
	svc := NewPostService(posts, noopUserRepo())

	result, err := svc.Like(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Like: %v", err)
	}
	if result.Likes != 5 || !result.Liked {
		t.Errorf("result = %+v, want 5 likes, liked", result)
	}
}

func TestLikeMissingPost(t *testing.T) {
	posts := noopPostRepo()
	posts.getByIDFn = func(_ context.Context, id, _ uint) (*models.Post, error) {
		return nil, models.NewNotFoundError("Post", id)
	}
	svc := NewPostService(posts, noopUserRepo())

	_, err := svc.Like(context.Background(), 1, 10)
	assertAppError(t, err, models.CodeNotFound)
}

func TestUnlikeReturnsCount(t *testing.T) {
	posts := noopPostRepo()
	posts.likeCountFn = func(context.Context, uint) (int64, error) { return 0, nil }
	svc := NewPostService(posts, noopUserRepo())

	result, err := svc.Unlike(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Unlike: %v", err)
	}
	if result.Likes != 0 || result.Liked {
		t.Errorf("result = %+v, want 0 likes, not liked", result)
	}
}

func TestShare(t *testing.T) {
	posts := noopPostRepo()
	posts.incrementSharesFn = func(context.Context, uint) (int64, error) { return 3, nil }
	svc := NewPostService(posts, noopUserRepo())

	result, err := svc.Share(context.Background(), 10)
	if err != nil {
		t.Fatalf("Share: %v", err)
	}
	if result.Shares != 3 {
		t.Errorf("shares = %d, want 3", result.Shares)
	}
}
