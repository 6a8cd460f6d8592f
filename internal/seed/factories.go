// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and by tests.
type Factory struct {
	db         *gorm.DB
	skipBcrypt bool
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	return &Factory{db: db}
}

// SkipBcrypt stores seed passwords in plain text for fast dev seeding.
func (f *Factory) SkipBcrypt() *Factory {
	f.skipBcrypt = true
	return f
}

var genders = []models.Gender{
	models.GenderMale,
	models.GenderFemale,
	models.GenderOther,
	models.GenderUnspecified,
}

// CreateUser constructs and persists a sample user. Optional override
// functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	age := gofakeit.Number(16, 80)
	user := &models.User{
		NameFirst: gofakeit.FirstName(),
		NameLast:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Gender:    genders[gofakeit.Number(0, len(genders)-1)],
		Age:       &age,
		Bio:       gofakeit.Sentence(8),
		Avatar:    fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		IsPrivate: gofakeit.Number(0, 9) < 2, // roughly one in five accounts is private
	}

	if f.skipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user. The
// generated content always clears the minimum publish length.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		UserID:  user.ID,
		Content: postContent(),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// postContent generates post text between the publishable bounds.
func postContent() string {
	content := gofakeit.Paragraph(1, gofakeit.Number(1, 4), 8, " ")
	if len(content) < models.MinPostLen {
		content = gofakeit.Sentence(6)
	}
	if len(content) > models.MaxPostLen {
		content = content[:models.MaxPostLen]
	}
	return content
}

// CreateComment constructs and persists a sample comment on the provided
// post authored by the provided user.
func (f *Factory) CreateComment(user *models.User, post *models.Post, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateLike persists a like from `user` on `post`. Duplicate likes are
// silently dropped, matching the API semantics.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	like := &models.Like{UserID: user.ID, PostID: post.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(like).Error
}

// CreateFollow persists a follow edge from follower to followee.
func (f *Factory) CreateFollow(follower, followee *models.User) error {
	follow := &models.Follow{FollowerID: follower.ID, FolloweeID: followee.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

// CreateFollowRequest persists a pending request from requester to a
// private target.
func (f *Factory) CreateFollowRequest(requester, target *models.User) error {
	request := &models.FollowRequest{RequesterID: requester.ID, TargetID: target.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(request).Error
}

// CreateBlock persists a block from blocker on blocked.
func (f *Factory) CreateBlock(blocker, blocked *models.User) error {
	block := &models.UserBlock{BlockerID: blocker.ID, BlockedID: blocked.ID}
	return f.db.Clauses(clause.OnConflict{DoNothing: true}).Create(block).Error
}
