package entitlements

import (
	"fmt"

	"github.com/shivajik/profilelinks/app/models"
)

// Action is something a tenant wants to do that the active plan may or may
// not permit.
type Action string

const (
	ActionAddLink       Action = "add_link"
	ActionAddPage       Action = "add_page"
	ActionAddBlock      Action = "add_block"
	ActionAddSocial     Action = "add_social"
	ActionAddTeamMember Action = "add_team_member"
	ActionUseQRCode     Action = "use_qr_code"
	ActionUseAnalytics  Action = "use_analytics"
)

// Decision is the outcome of an entitlement check. A denial is a normal
// result, not an error; Message carries the upgrade prompt shown to the user.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Message string `json:"message,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(resource string, current int64, limit int) Decision {
	return Decision{
		Allowed: false,
		Message: fmt.Sprintf("You've reached your %s limit (%d/%d). Upgrade your plan to add more %ss.", resource, current, limit, resource),
	}
}

func denyFeature(feature string) Decision {
	return Decision{
		Allowed: false,
		Message: fmt.Sprintf("Your plan does not include %s. Upgrade to unlock this feature.", feature),
	}
}

// CanPerform decides whether the tenant's current usage and plan permit the
// action. It is a pure decision function with no side effects.
//
// When usage or plan context is missing the check fails open: the caller is
// mid-request and blocking on unresolvable data would deny legitimate work.
func CanPerform(action Action, usage *models.UsageSnapshot, plan *models.Plan) Decision {
	if plan == nil {
		return allow()
	}

	switch action {
	case ActionUseQRCode:
		if !plan.QRCodeEnabled {
			return denyFeature("QR codes")
		}
		return allow()
	case ActionUseAnalytics:
		if !plan.AnalyticsEnabled {
			return denyFeature("analytics")
		}
		return allow()
	}

	if usage == nil {
		return allow()
	}

	// Limits at or above the unlimited sentinels never deny.
	switch action {
	case ActionAddLink:
		if plan.MaxLinks < models.UnlimitedLinksThreshold && usage.Links >= int64(plan.MaxLinks) {
			return deny("link", usage.Links, plan.MaxLinks)
		}
	case ActionAddPage:
		if plan.MaxPages < models.UnlimitedPagesThreshold && usage.Pages >= int64(plan.MaxPages) {
			return deny("page", usage.Pages, plan.MaxPages)
		}
	case ActionAddBlock:
		if plan.MaxBlocks < models.UnlimitedLinksThreshold && usage.Blocks >= int64(plan.MaxBlocks) {
			return deny("block", usage.Blocks, plan.MaxBlocks)
		}
	case ActionAddSocial:
		if plan.MaxSocials < models.UnlimitedLinksThreshold && usage.Socials >= int64(plan.MaxSocials) {
			return deny("social link", usage.Socials, plan.MaxSocials)
		}
	case ActionAddTeamMember:
		if plan.MaxTeamMembers < models.UnlimitedPagesThreshold && usage.TeamMembers >= int64(plan.MaxTeamMembers) {
			return deny("team member", usage.TeamMembers, plan.MaxTeamMembers)
		}
	}
	return allow()
}
