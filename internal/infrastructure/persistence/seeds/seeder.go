// Package seeds loads demo fixtures from a YAML file into the database.
// Seeding is idempotent: users already present are left untouched.
package seeds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"litrevu/internal/infrastructure/persistence/models"
	"litrevu/internal/shared/logger"
)

type fixtureUser struct {
	Username string   `yaml:"username"`
	Email    string   `yaml:"email"`
	Password string   `yaml:"password"`
	Follows  []string `yaml:"follows"`
}

type fixtureReview struct {
	Rating   int    `yaml:"rating"`
	Headline string `yaml:"headline"`
	Body     string `yaml:"body"`
	Author   string `yaml:"author"`
}

type fixtureTicket struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Creator     string         `yaml:"creator"`
	Review      *fixtureReview `yaml:"review"`
}

type fixtureFile struct {
	Users   []fixtureUser   `yaml:"users"`
	Tickets []fixtureTicket `yaml:"tickets"`
}

// PasswordHasher hashes fixture passwords the same way registration does.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

type Seeder struct {
	db     *gorm.DB
	hasher PasswordHasher
	logger logger.Interface
}

func NewSeeder(db *gorm.DB, hasher PasswordHasher) *Seeder {
	return &Seeder{
		db:     db,
		hasher: hasher,
		logger: logger.NewLogger().With("component", "seeds"),
	}
}

// LoadFile parses the YAML fixture file and inserts the users, follow edges,
// tickets and reviews it describes.
func (s *Seeder) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixtures fixtureFile
	if err := yaml.Unmarshal(data, &fixtures); err != nil {
		return fmt.Errorf("failed to parse fixture file: %w", err)
	}

	userIDs := make(map[string]uint)

	for _, fu := range fixtures.Users {
		id, err := s.seedUser(fu)
		if err != nil {
			return fmt.Errorf("failed to seed user %q: %w", fu.Username, err)
		}
		userIDs[fu.Username] = id
	}

	for _, fu := range fixtures.Users {
		for _, followed := range fu.Follows {
			if err := s.seedFollow(userIDs, fu.Username, followed); err != nil {
				return fmt.Errorf("failed to seed follow %q -> %q: %w", fu.Username, followed, err)
			}
		}
	}

	for _, ft := range fixtures.Tickets {
		if err := s.seedTicket(userIDs, ft); err != nil {
			return fmt.Errorf("failed to seed ticket %q: %w", ft.Title, err)
		}
	}

	s.logger.Infow("fixtures loaded",
		"users", len(fixtures.Users),
		"tickets", len(fixtures.Tickets))

	return nil
}

func (s *Seeder) seedUser(fu fixtureUser) (uint, error) {
	var existing models.UserModel
	err := s.db.Where("username = ?", fu.Username).First(&existing).Error
	if err == nil {
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return 0, err
	}

	hash, err := s.hasher.Hash(fu.Password)
	if err != nil {
		return 0, err
	}

	model := models.UserModel{
		Username:     fu.Username,
		PasswordHash: hash,
	}
	if fu.Email != "" {
		model.Email = &fu.Email
	}

	if err := s.db.Create(&model).Error; err != nil {
		return 0, err
	}
	return model.ID, nil
}

func (s *Seeder) seedFollow(userIDs map[string]uint, follower, followed string) error {
	followerID, ok := userIDs[follower]
	if !ok {
		return fmt.Errorf("unknown user %q", follower)
	}
	followedID, ok := userIDs[followed]
	if !ok {
		return fmt.Errorf("unknown user %q", followed)
	}

	var count int64
	if err := s.db.Model(&models.FollowModel{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return s.db.Create(&models.FollowModel{
		FollowerID: followerID,
		FollowedID: followedID,
	}).Error
}

func (s *Seeder) seedTicket(userIDs map[string]uint, ft fixtureTicket) error {
	creatorID, ok := userIDs[ft.Creator]
	if !ok {
		return fmt.Errorf("unknown user %q", ft.Creator)
	}

	var count int64
	if err := s.db.Model(&models.TicketModel{}).
		Where("title = ? AND creator_id = ?", ft.Title, creatorID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ticket := models.TicketModel{
		Title:       ft.Title,
		Description: ft.Description,
		CreatorID:   creatorID,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return err
	}

	if ft.Review == nil {
		return nil
	}

	authorID, ok := userIDs[ft.Review.Author]
	if !ok {
		return fmt.Errorf("unknown user %q", ft.Review.Author)
	}

	return s.db.Create(&models.ReviewModel{
		TicketID: ticket.ID,
		Rating:   ft.Review.Rating,
		Headline: ft.Review.Headline,
		Body:     ft.Review.Body,
		AuthorID: authorID,
	}).Error
}
