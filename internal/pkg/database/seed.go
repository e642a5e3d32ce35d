package database

import (
	"log"

	"github.com/shivajik/profilelinks/app/models"
	"gorm.io/gorm"
)

// SeedDefaultPlans ensures the default plan catalog exists. Existing rows are
// left alone so administrative corrections survive restarts.
func SeedDefaultPlans(db *gorm.DB) {
	plans := []models.Plan{
		{
			Name:           "Free",
			Description:    "Get started with a single profile page",
			MonthlyPrice:   "0",
			YearlyPrice:    "0",
			MaxLinks:       5,
			MaxPages:       1,
			MaxBlocks:      10,
			MaxSocials:     3,
			MaxTeamMembers: 1,
			IsActive:       true,
		},
		{
			Name:             "Pro",
			Description:      "For creators who need more room and insight",
			MonthlyPrice:     "999",
			YearlyPrice:      "9990",
			MaxLinks:         50,
			MaxPages:         5,
			MaxBlocks:        100,
			MaxSocials:       10,
			MaxTeamMembers:   3,
			QRCodeEnabled:    true,
			AnalyticsEnabled: true,
			IsActive:         true,
			IsFeatured:       true,
		},
		{
			Name:                   "Business",
			Description:            "Unlimited pages and a full team workspace",
			MonthlyPrice:           "2499",
			YearlyPrice:            "24990",
			MaxLinks:               models.UnlimitedLinksThreshold,
			MaxPages:               models.UnlimitedPagesThreshold,
			MaxBlocks:              models.UnlimitedLinksThreshold,
			MaxSocials:             models.UnlimitedLinksThreshold,
			MaxTeamMembers:         models.UnlimitedPagesThreshold,
			QRCodeEnabled:          true,
			AnalyticsEnabled:       true,
			CustomTemplatesEnabled: true,
			IsActive:               true,
		},
	}

	for _, plan := range plans {
		p := plan
		if err := db.Where("name = ?", p.Name).FirstOrCreate(&p).Error; err != nil {
			log.Printf("Failed to seed plan %s: %v", plan.Name, err)
		}
	}
}
