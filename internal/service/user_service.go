package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"linkup/internal/models"
	"linkup/internal/repository"
	"linkup/internal/validation"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile loads a user by ID.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// ProfileUpdate carries the fields a user may change on their own profile.
// Pointers distinguish "not sent" from zero values.
type ProfileUpdate struct {
	NameFirst *string        `json:"nameFirst"`
	NameLast  *string        `json:"nameLast"`
	Email     *string        `json:"email"`
	Gender    *models.Gender `json:"gender"`
	Avatar    *string        `json:"avatar"`
	Age       *int           `json:"age"`
	Bio       *string        `json:"bio"`
	IsPrivate *bool          `json:"isPrivate"`
}

// UpdateProfile applies an allow-listed partial update to the user's own
// profile. Unknown fields sent by the client are simply ignored.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, update *ProfileUpdate) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.NameFirst != nil {
		name := strings.TrimSpace(*update.NameFirst)
		if name == "" {
			return nil, models.NewValidationError("First name cannot be empty")
		}
		user.NameFirst = name
	}
	if update.NameLast != nil {
		name := strings.TrimSpace(*update.NameLast)
		if name == "" {
			return nil, models.NewValidationError("Last name cannot be empty")
		}
		user.NameLast = name
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if err := validation.ValidateEmail(email); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		if email != user.Email {
			existing, err := s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil {
				return nil, models.NewConflictError("Email already registered")
			}
			// Changing the address resets verification
			user.Email = email
			user.EmailVerified = false
		}
	}
	if update.Gender != nil {
		if !models.ValidGender(*update.Gender) {
			return nil, models.NewValidationError("Invalid gender value")
		}
		user.Gender = *update.Gender
	}
	if update.Avatar != nil {
		user.Avatar = strings.TrimSpace(*update.Avatar)
	}
	if update.Age != nil {
		if *update.Age < 0 || *update.Age > 150 {
			return nil, models.NewValidationError("Invalid age")
		}
		user.Age = update.Age
	}
	if update.Bio != nil {
		bio := strings.TrimSpace(*update.Bio)
		if utf8.RuneCountInString(bio) > models.MaxBioLen {
			return nil, models.NewValidationError("Bio must be at most 250 characters")
		}
		user.Bio = bio
	}
	if update.IsPrivate != nil {
		user.IsPrivate = *update.IsPrivate
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
