package seed

import (
	"fmt"
	"log"

	"linkup/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with test data: users, a follow graph with
// pending requests against private accounts, posts and engagement.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	factory := NewFactory(db)

	users, err := createUsers(db, factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("%d test users created", len(users))

	if err := createFollowGraph(factory, users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Println("follow graph created")

	posts, err := createPosts(factory, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("%d posts created", len(posts))

	if err := createEngagement(factory, users, posts); err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Println("likes and comments created")

	log.Println("Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE comments, likes, follow_requests, follows, user_blocks, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// Always include a couple of fixed accounts so logins stay predictable
	// across reseeds.
	if count >= 2 {
		fixed := []models.User{
			{NameFirst: "Demo", NameLast: "User", Email: "demo@example.com", Gender: models.GenderUnspecified},
			{NameFirst: "Test", NameLast: "Private", Email: "private@example.com", Gender: models.GenderUnspecified, IsPrivate: true},
		}
		for i := range fixed {
			fixed[i].Password = string(hashedPassword)
			fixed[i].Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", fixed[i].Email)
			if err := db.Create(&fixed[i]).Error; err == nil {
				users = append(users, &fixed[i])
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser(func(u *models.User) {
			// suffix guards against the occasional gofakeit email collision
			u.Email = fmt.Sprintf("%d.%s", i, u.Email)
		})
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

// createFollowGraph wires a sparse random follow graph. Open accounts get
// direct edges; private accounts collect pending requests instead, with a
// portion pre-accepted so private content has an audience too.
func createFollowGraph(factory *Factory, users []*models.User) error {
	if len(users) < 2 {
		return nil
	}

	for _, follower := range users {
		targets := gofakeit.Number(1, len(users)/4+1)
		for t := 0; t < targets; t++ {
			followee := users[gofakeit.Number(0, len(users)-1)]
			if followee.ID == follower.ID {
				continue
			}

			if followee.IsPrivate {
				// one in three requests was already accepted
				if gofakeit.Number(0, 2) == 0 {
					if err := factory.CreateFollow(follower, followee); err != nil {
						return err
					}
				} else if err := factory.CreateFollowRequest(follower, followee); err != nil {
					return err
				}
				continue
			}

			if err := factory.CreateFollow(follower, followee); err != nil {
				return err
			}
		}
	}
	return nil
}

func createPosts(factory *Factory, users []*models.User, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[gofakeit.Number(0, len(users)-1)]
		post, err := factory.CreatePost(author, func(p *models.Post) {
			p.Shares = gofakeit.Number(0, 25)
		})
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)

		if i > 0 && i%100 == 0 {
			log.Printf("Created %d posts...", i)
		}
	}
	return posts, nil
}

func createEngagement(factory *Factory, users []*models.User, posts []*models.Post) error {
	for _, post := range posts {
		likes := gofakeit.Number(0, len(users)/3+1)
		for l := 0; l < likes; l++ {
			user := users[gofakeit.Number(0, len(users)-1)]
			if err := factory.CreateLike(user, post); err != nil {
				return err
			}
		}

		comments := gofakeit.Number(0, 5)
		for c := 0; c < comments; c++ {
			user := users[gofakeit.Number(0, len(users)-1)]
			if _, err := factory.CreateComment(user, post); err != nil {
				return err
			}
		}
	}
	return nil
}
