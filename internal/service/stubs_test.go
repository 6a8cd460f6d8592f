package service

import (
	"context"

	"linkup/internal/models"
	"linkup/internal/repository"
)

type userRepoStub struct {
	getByIDFn    func(context.Context, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	listFn       func(context.Context, int, int) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) List(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.listFn(ctx, limit, offset)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn:    func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		listFn:       func(context.Context, int, int) ([]models.User, error) { return nil, nil },
	}
}

type graphRepoStub struct {
	createFollowFn     func(context.Context, uint, uint) error
	deleteFollowFn     func(context.Context, uint, uint) (bool, error)
	followExistsFn     func(context.Context, uint, uint) (bool, error)
	createRequestFn    func(context.Context, uint, uint) error
	deleteRequestFn    func(context.Context, uint, uint) (bool, error)
	requestExistsFn    func(context.Context, uint, uint) (bool, error)
	acceptRequestFn    func(context.Context, uint, uint) error
	createBlockFn      func(context.Context, uint, uint) error
	deleteBlockFn      func(context.Context, uint, uint) (bool, error)
	blockExistsFn      func(context.Context, uint, uint) (bool, error)
	listFollowingFn    func(context.Context, uint) ([]models.User, error)
	listFollowersFn    func(context.Context, uint) ([]models.User, error)
	listFollowingIDsFn func(context.Context, uint) ([]uint, error)
	getPairStateFn     func(context.Context, uint, uint) (*repository.PairState, error)
}

func (s *graphRepoStub) CreateFollow(ctx context.Context, a, b uint) error {
	return s.createFollowFn(ctx, a, b)
}
func (s *graphRepoStub) DeleteFollow(ctx context.Context, a, b uint) (bool, error) {
	return s.deleteFollowFn(ctx, a, b)
}
func (s *graphRepoStub) FollowExists(ctx context.Context, a, b uint) (bool, error) {
	return s.followExistsFn(ctx, a, b)
}
func (s *graphRepoStub) CreateRequest(ctx context.Context, a, b uint) error {
	return s.createRequestFn(ctx, a, b)
}
func (s *graphRepoStub) DeleteRequest(ctx context.Context, a, b uint) (bool, error) {
	return s.deleteRequestFn(ctx, a, b)
}
func (s *graphRepoStub) RequestExists(ctx context.Context, a, b uint) (bool, error) {
	return s.requestExistsFn(ctx, a, b)
}
func (s *graphRepoStub) AcceptRequest(ctx context.Context, a, b uint) error {
	return s.acceptRequestFn(ctx, a, b)
}
func (s *graphRepoStub) CreateBlock(ctx context.Context, a, b uint) error {
	return s.createBlockFn(ctx, a, b)
}
func (s *graphRepoStub) DeleteBlock(ctx context.Context, a, b uint) (bool, error) {
	return s.deleteBlockFn(ctx, a, b)
}
func (s *graphRepoStub) BlockExists(ctx context.Context, a, b uint) (bool, error) {
	return s.blockExistsFn(ctx, a, b)
}
func (s *graphRepoStub) ListFollowing(ctx context.Context, id uint) ([]models.User, error) {
	return s.listFollowingFn(ctx, id)
}
func (s *graphRepoStub) ListFollowers(ctx context.Context, id uint) ([]models.User, error) {
	return s.listFollowersFn(ctx, id)
}
func (s *graphRepoStub) ListFollowingIDs(ctx context.Context, id uint) ([]uint, error) {
	return s.listFollowingIDsFn(ctx, id)
}
func (s *graphRepoStub) GetPairState(ctx context.Context, a, b uint) (*repository.PairState, error) {
	return s.getPairStateFn(ctx, a, b)
}

func noopGraphRepo() *graphRepoStub {
	return &graphRepoStub{
		createFollowFn:     func(context.Context, uint, uint) error { return nil },
		deleteFollowFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		followExistsFn:     func(context.Context, uint, uint) (bool, error) { return false, nil },
		createRequestFn:    func(context.Context, uint, uint) error { return nil },
		deleteRequestFn:    func(context.Context, uint, uint) (bool, error) { return true, nil },
		requestExistsFn:    func(context.Context, uint, uint) (bool, error) { return false, nil },
		acceptRequestFn:    func(context.Context, uint, uint) error { return nil },
		createBlockFn:      func(context.Context, uint, uint) error { return nil },
		deleteBlockFn:      func(context.Context, uint, uint) (bool, error) { return true, nil },
		blockExistsFn:      func(context.Context, uint, uint) (bool, error) { return false, nil },
		listFollowingFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		listFollowersFn:    func(context.Context, uint) ([]models.User, error) { return nil, nil },
		listFollowingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		getPairStateFn: func(context.Context, uint, uint) (*repository.PairState, error) {
			return &repository.PairState{}, nil
		},
	}
}

type postRepoStub struct {
	createFn          func(context.Context, *models.Post) error
	getByIDFn         func(context.Context, uint, uint) (*models.Post, error)
	getByUserIDFn     func(context.Context, uint, int, int, uint) ([]*models.Post, error)
	deleteFn          func(context.Context, uint) error
	publicFeedFn      func(context.Context, int, int) ([]*models.Post, int64, error)
	followingFeedFn   func(context.Context, []uint, int, int) ([]*models.Post, int64, error)
	likeFn            func(context.Context, uint, uint) error
	unlikeFn          func(context.Context, uint, uint) error
	isLikedFn         func(context.Context, uint, uint) (bool, error)
	likeCountFn       func(context.Context, uint) (int64, error)
	incrementSharesFn func(context.Context, uint) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id, viewerID uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id, viewerID)
}
func (s *postRepoStub) GetByUserID(ctx context.Context, userID uint, limit, offset int, viewerID uint) ([]*models.Post, error) {
	return s.getByUserIDFn(ctx, userID, limit, offset, viewerID)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *postRepoStub) PublicFeed(ctx context.Context, limit, offset int) ([]*models.Post, int64, error) {
	return s.publicFeedFn(ctx, limit, offset)
}
func (s *postRepoStub) FollowingFeed(ctx context.Context, authorIDs []uint, limit, offset int) ([]*models.Post, int64, error) {
	return s.followingFeedFn(ctx, authorIDs, limit, offset)
}
func (s *postRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *postRepoStub) Unlike(ctx context.Context, userID, postID uint) error {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *postRepoStub) IsLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.isLikedFn(ctx, userID, postID)
}
func (s *postRepoStub) LikeCount(ctx context.Context, postID uint) (int64, error) {
	return s.likeCountFn(ctx, postID)
}
func (s *postRepoStub) IncrementShares(ctx context.Context, postID uint) (int64, error) {
	return s.incrementSharesFn(ctx, postID)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn: func(_ context.Context, p *models.Post) error {
			p.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Post, error) {
			return &models.Post{ID: id, UserID: 1}, nil
		},
		getByUserIDFn: func(context.Context, uint, int, int, uint) ([]*models.Post, error) { return nil, nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		publicFeedFn: func(context.Context, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		followingFeedFn: func(context.Context, []uint, int, int) ([]*models.Post, int64, error) {
			return nil, 0, nil
		},
		likeFn:            func(context.Context, uint, uint) error { return nil },
		unlikeFn:          func(context.Context, uint, uint) error { return nil },
		isLikedFn:         func(context.Context, uint, uint) (bool, error) { return false, nil },
		likeCountFn:       func(context.Context, uint) (int64, error) { return 0, nil },
		incrementSharesFn: func(context.Context, uint) (int64, error) { return 1, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint) (*models.Comment, error)
	listByPostFn  func(context.Context, uint, int, int) ([]models.Comment, error)
	countByPostFn func(context.Context, uint) (int64, error)
	deleteFn      func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]models.Comment, error) {
	return s.listByPostFn(ctx, postID, limit, offset)
}
func (s *commentRepoStub) CountByPost(ctx context.Context, postID uint) (int64, error) {
	return s.countByPostFn(ctx, postID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, c *models.Comment) error {
			c.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, UserID: 1}, nil
		},
		listByPostFn:  func(context.Context, uint, int, int) ([]models.Comment, error) { return nil, nil },
		countByPostFn: func(context.Context, uint) (int64, error) { return 0, nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}
