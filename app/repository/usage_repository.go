package repository

import (
	"github.com/shivajik/profilelinks/app/models"
)

// usageRepository implements the UsageRepository interface by composing the
// per-resource repositories
type usageRepository struct {
	links   LinkRepository
	pages   PageRepository
	blocks  BlockRepository
	socials SocialRepository
	team    TeamRepository
}

// NewUsageRepository creates a usage repository on top of the per-resource ones
func NewUsageRepository(links LinkRepository, pages PageRepository, blocks BlockRepository, socials SocialRepository, team TeamRepository) UsageRepository {
	return &usageRepository{
		links:   links,
		pages:   pages,
		blocks:  blocks,
		socials: socials,
		team:    team,
	}
}

// CountUsage computes the tenant's current resource counts. Links and blocks
// count only active rows; pages and socials count unconditionally; team
// members count unless deactivated. Read-only, no side effects.
func (r *usageRepository) CountUsage(userID uint) (*models.UsageSnapshot, error) {
	var snapshot models.UsageSnapshot
	var err error

	if snapshot.Links, err = r.links.CountActiveByUserID(userID); err != nil {
		return nil, err
	}
	if snapshot.Pages, err = r.pages.CountByUserID(userID); err != nil {
		return nil, err
	}
	if snapshot.Blocks, err = r.blocks.CountActiveByUserID(userID); err != nil {
		return nil, err
	}
	if snapshot.Socials, err = r.socials.CountByUserID(userID); err != nil {
		return nil, err
	}
	if snapshot.TeamMembers, err = r.team.CountCountableByOwnerID(userID); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
