package repository

import (
	"context"
	"errors"

	"linkup/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PairState holds every edge that exists between an ordered user pair.
// The service layer reduces it to a single relationship value.
type PairState struct {
	Follows    bool // a follows b
	FollowedBy bool // b follows a
	Blocked    bool // a blocked b
	BlockedBy  bool // b blocked a
	Requested  bool // a has a pending request to b
	RequestOf  bool // b has a pending request to a
}

// GraphRepository defines persistence operations for the follow graph:
// follow edges, pending follow requests and blocks.
type GraphRepository interface {
	CreateFollow(ctx context.Context, followerID, followeeID uint) error
	DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error)
	FollowExists(ctx context.Context, followerID, followeeID uint) (bool, error)

	CreateRequest(ctx context.Context, requesterID, targetID uint) error
	DeleteRequest(ctx context.Context, requesterID, targetID uint) (bool, error)
	RequestExists(ctx context.Context, requesterID, targetID uint) (bool, error)
	AcceptRequest(ctx context.Context, requesterID, targetID uint) error

	CreateBlock(ctx context.Context, blockerID, blockedID uint) error
	DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error)
	BlockExists(ctx context.Context, blockerID, blockedID uint) (bool, error)

	ListFollowing(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowers(ctx context.Context, userID uint) ([]models.User, error)
	ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error)

	GetPairState(ctx context.Context, aID, bID uint) (*PairState, error)
}

type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository creates a new follow graph repository.
func NewGraphRepository(db *gorm.DB) GraphRepository {
	return &graphRepository{db: db}
}

func (r *graphRepository) CreateFollow(ctx context.Context, followerID, followeeID uint) error {
	follow := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) DeleteFollow(ctx context.Context, followerID, followeeID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *graphRepository) FollowExists(ctx context.Context, followerID, followeeID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *graphRepository) CreateRequest(ctx context.Context, requesterID, targetID uint) error {
	request := models.FollowRequest{RequesterID: requesterID, TargetID: targetID}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&request).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) DeleteRequest(ctx context.Context, requesterID, targetID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		Delete(&models.FollowRequest{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *graphRepository) RequestExists(ctx context.Context, requesterID, targetID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FollowRequest{}).
		Where("requester_id = ? AND target_id = ?", requesterID, targetID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

// AcceptRequest converts a pending request into a follow edge. The request
// removal and the edge creation happen in one transaction so the pair can
// never hold both.
func (r *graphRepository) AcceptRequest(ctx context.Context, requesterID, targetID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("requester_id = ? AND target_id = ?", requesterID, targetID).
			Delete(&models.FollowRequest{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		follow := models.Follow{FollowerID: requesterID, FolloweeID: targetID}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&follow).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundMessage("Follow request not found")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// CreateBlock records the block and severs every follow edge and pending
// request between the two users, in both directions, atomically.
func (r *graphRepository) CreateBlock(ctx context.Context, blockerID, blockedID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		block := models.UserBlock{BlockerID: blockerID, BlockedID: blockedID}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&block).Error; err != nil {
			return err
		}
		if err := tx.Where(
			"(follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)",
			blockerID, blockedID, blockedID, blockerID,
		).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		return tx.Where(
			"(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)",
			blockerID, blockedID, blockedID, blockerID,
		).Delete(&models.FollowRequest{}).Error
	})
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *graphRepository) DeleteBlock(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Delete(&models.UserBlock{})
	if res.Error != nil {
		return false, models.NewInternalError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (r *graphRepository) BlockExists(ctx context.Context, blockerID, blockedID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserBlock{}).
		Where("blocker_id = ? AND blocked_id = ?", blockerID, blockedID).
		Count(&count).Error; err != nil {
		return false, models.NewInternalError(err)
	}
	return count > 0, nil
}

func (r *graphRepository) ListFollowing(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.followee_id").
		Where("f.follower_id = ?", userID).
		Order("f.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *graphRepository) ListFollowers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).
		Table("users").
		Joins("JOIN follows f ON users.id = f.follower_id").
		Where("f.followee_id = ?", userID).
		Order("f.created_at DESC").
		Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}

func (r *graphRepository) ListFollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &ids).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ids, nil
}

func (r *graphRepository) GetPairState(ctx context.Context, aID, bID uint) (*PairState, error) {
	state := &PairState{}

	var follows []models.Follow
	if err := r.db.WithContext(ctx).
		Where("(follower_id = ? AND followee_id = ?) OR (follower_id = ? AND followee_id = ?)",
			aID, bID, bID, aID).
		Find(&follows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, f := range follows {
		if f.FollowerID == aID {
			state.Follows = true
		} else {
			state.FollowedBy = true
		}
	}

	var blocks []models.UserBlock
	if err := r.db.WithContext(ctx).
		Where("(blocker_id = ? AND blocked_id = ?) OR (blocker_id = ? AND blocked_id = ?)",
			aID, bID, bID, aID).
		Find(&blocks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, b := range blocks {
		if b.BlockerID == aID {
			state.Blocked = true
		} else {
			state.BlockedBy = true
		}
	}

	var requests []models.FollowRequest
	if err := r.db.WithContext(ctx).
		Where("(requester_id = ? AND target_id = ?) OR (requester_id = ? AND target_id = ?)",
			aID, bID, bID, aID).
		Find(&requests).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	for _, req := range requests {
		if req.RequesterID == aID {
			state.Requested = true
		} else {
			state.RequestOf = true
		}
	}

	return state, nil
}
