// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"myblog/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeder creates demo users, posts, comments and likes.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
}

// NewSeeder creates a new Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// ClearAll removes all seeded data. Children first so the restrict
// foreign keys don't block the deletes.
func (s *Seeder) ClearAll() error {
	for _, table := range []string{"likes", "comments", "posts", "users"} {
		if err := s.db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return nil
}

// pastTime returns a random instant within the last maxDays days.
func (s *Seeder) pastTime(maxDays int) time.Time {
	back := time.Duration(s.rng.Intn(maxDays*24*60)) * time.Minute
	return time.Now().Add(-back)
}

// SeedUsers creates n users with a shared demo password.
func (s *Seeder) SeedUsers(n int) ([]*models.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte("demo-password-1"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		created := s.pastTime(180)
		user := &models.User{
			Username:  fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:     fmt.Sprintf("user%d.%s", i, gofakeit.Email()),
			Password:  string(digest),
			CreatedAt: created,
			UpdatedAt: created,
		}
		if err := s.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("seeding user %d: %w", i, err)
		}
		users = append(users, user)
	}
	log.Printf("Seeded %d users", len(users))
	return users, nil
}

// SeedPosts creates n posts spread across the given users.
func (s *Seeder) SeedPosts(users []*models.User, n int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[s.rng.Intn(len(users))]
		created := s.pastTime(90)
		post := &models.Post{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:    author.ID,
			CreatedAt: created,
			UpdatedAt: created,
		}
		if s.rng.Intn(3) == 0 {
			path := fmt.Sprintf("/media/%s.jpg", gofakeit.UUID())
			post.ImagePath = &path
		}
		if err := s.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("seeding post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	log.Printf("Seeded %d posts", len(posts))
	return posts, nil
}

// SeedComments creates n comments on random posts by random users.
func (s *Seeder) SeedComments(users []*models.User, posts []*models.Post, n int) error {
	for i := 0; i < n; i++ {
		post := posts[s.rng.Intn(len(posts))]
		// Comments land after their post so thread order stays sensible.
		created := post.CreatedAt.Add(time.Duration(s.rng.Intn(72)) * time.Hour)
		comment := &models.Comment{
			Content:   gofakeit.Sentence(10),
			PostID:    post.ID,
			UserID:    users[s.rng.Intn(len(users))].ID,
			CreatedAt: created,
			UpdatedAt: created,
		}
		if err := s.db.Create(comment).Error; err != nil {
			return fmt.Errorf("seeding comment %d: %w", i, err)
		}
	}
	log.Printf("Seeded %d comments", n)
	return nil
}

// SeedLikes likes each post by a random subset of users, keeping the
// (post, user) pair unique.
func (s *Seeder) SeedLikes(users []*models.User, posts []*models.Post) error {
	total := 0
	for _, post := range posts {
		for _, user := range users {
			if s.rng.Intn(4) != 0 {
				continue
			}
			like := &models.Like{
				PostID:    post.ID,
				UserID:    user.ID,
				CreatedAt: post.CreatedAt.Add(time.Duration(s.rng.Intn(96)) * time.Hour),
			}
			if err := s.db.Create(like).Error; err != nil {
				return fmt.Errorf("seeding like for post %d: %w", post.ID, err)
			}
			total++
		}
	}
	log.Printf("Seeded %d likes", total)
	return nil
}
