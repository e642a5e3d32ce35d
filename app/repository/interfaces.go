package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for tenant account operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByActivationToken(token string) (*models.User, error)
	Update(user *models.User) error
}

// PlanRepository defines the interface for plan catalog reads
type PlanRepository interface {
	ListActive() ([]models.Plan, error)
	GetByID(id uint) (*models.Plan, error)
}

// SubscriptionRepository defines read access to a tenant's current subscription
type SubscriptionRepository interface {
	GetByUserID(userID uint) (*models.Subscription, error)
}

// UsageRepository computes a tenant's current resource counts
type UsageRepository interface {
	CountUsage(userID uint) (*models.UsageSnapshot, error)
}

// LinkRepository defines the interface for profile link operations
type LinkRepository interface {
	Create(link *models.Link) error
	GetByUserID(userID uint) ([]models.Link, error)
	CountActiveByUserID(userID uint) (int64, error)
}

// PageRepository defines the interface for profile page operations
type PageRepository interface {
	Create(page *models.Page) error
	GetByID(id uint) (*models.Page, error)
	GetBySlug(slug string) (*models.Page, error)
	CountByUserID(userID uint) (int64, error)
	IncrementViewCount(id uint) error
}

// BlockRepository defines the interface for page block operations
type BlockRepository interface {
	Create(block *models.Block) error
	GetByPageID(pageID uint) ([]models.Block, error)
	CountActiveByUserID(userID uint) (int64, error)
}

// SocialRepository defines the interface for social link operations
type SocialRepository interface {
	Create(social *models.SocialLink) error
	GetByUserID(userID uint) ([]models.SocialLink, error)
	CountByUserID(userID uint) (int64, error)
}

// TeamRepository defines the interface for team member operations
type TeamRepository interface {
	Create(member *models.TeamMember) error
	GetByOwnerID(ownerID uint) ([]models.TeamMember, error)
	CountCountableByOwnerID(ownerID uint) (int64, error)
}

// AnalyticsSummary aggregates engagement counters for a tenant
type AnalyticsSummary struct {
	TotalPageViews  int64 `json:"total_page_views"`
	TotalLinkClicks int64 `json:"total_link_clicks"`
	ActiveLinks     int64 `json:"active_links"`
	ActivePages     int64 `json:"active_pages"`
}

// AnalyticsRepository aggregates view/click counters per tenant
type AnalyticsRepository interface {
	GetSummary(userID uint) (*AnalyticsSummary, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Plan         PlanRepository
	Subscription SubscriptionRepository
	Usage        UsageRepository
	Link         LinkRepository
	Page         PageRepository
	Block        BlockRepository
	Social       SocialRepository
	Team         TeamRepository
	Analytics    AnalyticsRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	link := NewLinkRepository(db)
	page := NewPageRepository(db)
	block := NewBlockRepository(db)
	social := NewSocialRepository(db)
	team := NewTeamRepository(db)

	return &Repositories{
		User:         NewUserRepository(db),
		Plan:         NewPlanRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Usage:        NewUsageRepository(link, page, block, social, team),
		Link:         link,
		Page:         page,
		Block:        block,
		Social:       social,
		Team:         team,
		Analytics:    NewAnalyticsRepository(db),
	}
}
