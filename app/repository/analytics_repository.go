package repository

import (
	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// analyticsRepository implements the AnalyticsRepository interface
type analyticsRepository struct {
	db *gorm.DB
}

// NewAnalyticsRepository creates a new analytics repository instance
func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (r *analyticsRepository) GetSummary(userID uint) (*AnalyticsSummary, error) {
	var summary AnalyticsSummary

	row := r.db.Model(&models.Link{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Select("COUNT(*) AS active_links, COALESCE(SUM(click_count), 0) AS total_link_clicks").
		Row()
	if err := row.Scan(&summary.ActiveLinks, &summary.TotalLinkClicks); err != nil {
		return nil, err
	}

	row = r.db.Model(&models.Page{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Select("COUNT(*) AS active_pages, COALESCE(SUM(view_count), 0) AS total_page_views").
		Row()
	if err := row.Scan(&summary.ActivePages, &summary.TotalPageViews); err != nil {
		return nil, err
	}

	return &summary, nil
}
