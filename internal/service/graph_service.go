// Package service implements the business logic layer.
package service

import (
	"context"

	"linkup/internal/models"
	"linkup/internal/repository"
)

// GraphService provides follow, follow-request and block business logic.
type GraphService struct {
	graphRepo repository.GraphRepository
	userRepo  repository.UserRepository
}

// NewGraphService returns a new GraphService.
func NewGraphService(graphRepo repository.GraphRepository, userRepo repository.UserRepository) *GraphService {
	return &GraphService{
		graphRepo: graphRepo,
		userRepo:  userRepo,
	}
}

// FollowResult reports what a follow attempt produced: an immediate follow
// for open accounts, a pending request for private ones.
type FollowResult struct {
	Status models.Relationship `json:"status"`
}

// Follow follows an open account or files a request against a private one.
func (s *GraphService) Follow(ctx context.Context, userID, targetID uint) (*FollowResult, error) {
	if userID == targetID {
		return nil, models.NewValidationError("Cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	state, err := s.graphRepo.GetPairState(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if state.Blocked || state.BlockedBy {
		return nil, models.NewForbiddenError("Cannot follow this user")
	}
	if state.Follows {
		return nil, models.NewConflictError("Already following this user")
	}
	if state.Requested {
		return nil, models.NewConflictError("Follow request already sent")
	}

	if target.IsPrivate {
		if err := s.graphRepo.CreateRequest(ctx, userID, targetID); err != nil {
			return nil, err
		}
		return &FollowResult{Status: models.RelationRequested}, nil
	}

	if err := s.graphRepo.CreateFollow(ctx, userID, targetID); err != nil {
		return nil, err
	}
	return &FollowResult{Status: models.RelationFollowing}, nil
}

// Unfollow removes the follow edge from userID to targetID.
func (s *GraphService) Unfollow(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewValidationError("Cannot unfollow yourself")
	}
	removed, err := s.graphRepo.DeleteFollow(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewConflictError("Not following this user")
	}
	return nil
}

// AcceptRequest lets the target of a pending request turn it into a follow.
func (s *GraphService) AcceptRequest(ctx context.Context, userID, requesterID uint) error {
	pending, err := s.graphRepo.RequestExists(ctx, requesterID, userID)
	if err != nil {
		return err
	}
	if !pending {
		return models.NewConflictError("No pending follow request from this user")
	}
	return s.graphRepo.AcceptRequest(ctx, requesterID, userID)
}

// RejectRequest lets the target of a pending request discard it.
func (s *GraphService) RejectRequest(ctx context.Context, userID, requesterID uint) error {
	removed, err := s.graphRepo.DeleteRequest(ctx, requesterID, userID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundMessage("Follow request not found")
	}
	return nil
}

// CancelRequest lets the requester withdraw their own pending request.
func (s *GraphService) CancelRequest(ctx context.Context, userID, targetID uint) error {
	removed, err := s.graphRepo.DeleteRequest(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewNotFoundMessage("Follow request not found")
	}
	return nil
}

// Block records a block and severs every follow and pending request between
// the pair, in both directions.
func (s *GraphService) Block(ctx context.Context, userID, targetID uint) error {
	if userID == targetID {
		return models.NewValidationError("Cannot block yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, targetID); err != nil {
		return err
	}

	blocked, err := s.graphRepo.BlockExists(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if blocked {
		return models.NewConflictError("User already blocked")
	}

	return s.graphRepo.CreateBlock(ctx, userID, targetID)
}

// Unblock lifts a block. Severed follows stay severed.
func (s *GraphService) Unblock(ctx context.Context, userID, targetID uint) error {
	removed, err := s.graphRepo.DeleteBlock(ctx, userID, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewConflictError("User is not blocked")
	}
	return nil
}

// GetFollowing returns the accounts userID follows.
func (s *GraphService) GetFollowing(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	users, err := s.graphRepo.ListFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// GetFollowers returns the accounts following userID.
func (s *GraphService) GetFollowers(ctx context.Context, userID uint) ([]models.UserSummary, error) {
	users, err := s.graphRepo.ListFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(users), nil
}

// RelationshipBetween reduces the edges of the pair (userID, otherID) to a
// single relationship value from userID's point of view.
func (s *GraphService) RelationshipBetween(ctx context.Context, userID, otherID uint) (models.Relationship, error) {
	if userID == otherID {
		return models.RelationNone, models.NewValidationError("Cannot query relationship with yourself")
	}
	if _, err := s.userRepo.GetByID(ctx, otherID); err != nil {
		return models.RelationNone, err
	}

	state, err := s.graphRepo.GetPairState(ctx, userID, otherID)
	if err != nil {
		return models.RelationNone, err
	}

	switch {
	case state.Blocked:
		return models.RelationBlocked, nil
	case state.BlockedBy:
		return models.RelationBlockedBy, nil
	case state.Follows && state.FollowedBy:
		return models.RelationMutual, nil
	case state.Follows:
		return models.RelationFollowing, nil
	case state.FollowedBy:
		return models.RelationFollowedBy, nil
	case state.Requested:
		return models.RelationRequested, nil
	case state.RequestOf:
		return models.RelationRequestOf, nil
	default:
		return models.RelationNone, nil
	}
}

func summarize(users []models.User) []models.UserSummary {
	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	return out
}
