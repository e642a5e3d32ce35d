package entitlements

import (
	"strings"
	"testing"

	"github.com/shivajik/profilelinks/app/models"
)

func testPlan() *models.Plan {
	return &models.Plan{
		Name:           "Pro",
		MaxLinks:       5,
		MaxPages:       2,
		MaxBlocks:      10,
		MaxSocials:     4,
		MaxTeamMembers: 3,
	}
}

func TestCanPerform_CountLimits(t *testing.T) {
	plan := testPlan()

	tests := []struct {
		name    string
		action  Action
		usage   models.UsageSnapshot
		allowed bool
	}{
		{name: "links below limit", action: ActionAddLink, usage: models.UsageSnapshot{Links: 4}, allowed: true},
		{name: "links at limit", action: ActionAddLink, usage: models.UsageSnapshot{Links: 5}, allowed: false},
		{name: "links over limit", action: ActionAddLink, usage: models.UsageSnapshot{Links: 7}, allowed: false},
		{name: "pages below limit", action: ActionAddPage, usage: models.UsageSnapshot{Pages: 1}, allowed: true},
		{name: "pages at limit", action: ActionAddPage, usage: models.UsageSnapshot{Pages: 2}, allowed: false},
		{name: "blocks below limit", action: ActionAddBlock, usage: models.UsageSnapshot{Blocks: 9}, allowed: true},
		{name: "blocks at limit", action: ActionAddBlock, usage: models.UsageSnapshot{Blocks: 10}, allowed: false},
		{name: "socials below limit", action: ActionAddSocial, usage: models.UsageSnapshot{Socials: 3}, allowed: true},
		{name: "socials at limit", action: ActionAddSocial, usage: models.UsageSnapshot{Socials: 4}, allowed: false},
		{name: "team below limit", action: ActionAddTeamMember, usage: models.UsageSnapshot{TeamMembers: 2}, allowed: true},
		{name: "team at limit", action: ActionAddTeamMember, usage: models.UsageSnapshot{TeamMembers: 3}, allowed: false},
	}

	for _, tt := range tests {
		usage := tt.usage
		got := CanPerform(tt.action, &usage, plan)
		if got.Allowed != tt.allowed {
			t.Fatalf("%s: CanPerform(%s) allowed = %v, want %v", tt.name, tt.action, got.Allowed, tt.allowed)
		}
		if !tt.allowed && got.Message == "" {
			t.Fatalf("%s: denial must carry an upgrade message", tt.name)
		}
		if tt.allowed && got.Message != "" {
			t.Fatalf("%s: allow decision should not carry a message, got %q", tt.name, got.Message)
		}
	}
}

func TestCanPerform_DenialMessageContainsUsagePair(t *testing.T) {
	plan := testPlan()
	usage := &models.UsageSnapshot{Links: 5}

	got := CanPerform(ActionAddLink, usage, plan)
	if got.Allowed {
		t.Fatalf("expected denial at 5/5 links")
	}
	if !strings.Contains(got.Message, "5/5") {
		t.Fatalf("expected message to contain current/limit pair, got %q", got.Message)
	}
	if !strings.Contains(got.Message, "link") {
		t.Fatalf("expected message to name the resource, got %q", got.Message)
	}
}

func TestCanPerform_FeatureFlags(t *testing.T) {
	plan := testPlan()

	if got := CanPerform(ActionUseQRCode, nil, plan); got.Allowed {
		t.Fatalf("expected QR code denial when the plan flag is off")
	}
	if got := CanPerform(ActionUseAnalytics, nil, plan); got.Allowed {
		t.Fatalf("expected analytics denial when the plan flag is off")
	}

	plan.QRCodeEnabled = true
	plan.AnalyticsEnabled = true
	if got := CanPerform(ActionUseQRCode, nil, plan); !got.Allowed {
		t.Fatalf("expected QR code allow, got %q", got.Message)
	}
	if got := CanPerform(ActionUseAnalytics, nil, plan); !got.Allowed {
		t.Fatalf("expected analytics allow, got %q", got.Message)
	}
}

func TestCanPerform_FailsOpenWithoutContext(t *testing.T) {
	if got := CanPerform(ActionAddLink, nil, nil); !got.Allowed {
		t.Fatalf("expected fail-open without plan context")
	}
	if got := CanPerform(ActionAddLink, nil, testPlan()); !got.Allowed {
		t.Fatalf("expected fail-open without usage context")
	}
	if got := CanPerform(ActionUseQRCode, nil, nil); !got.Allowed {
		t.Fatalf("expected fail-open for feature checks without plan context")
	}
}

func TestCanPerform_UnlimitedSentinel(t *testing.T) {
	plan := testPlan()
	plan.MaxLinks = models.UnlimitedLinksThreshold
	plan.MaxPages = models.UnlimitedPagesThreshold

	usage := &models.UsageSnapshot{Links: 1500, Pages: 250}
	if got := CanPerform(ActionAddLink, usage, plan); !got.Allowed {
		t.Fatalf("expected sentinel link limit to behave as unlimited, got %q", got.Message)
	}
	if got := CanPerform(ActionAddPage, usage, plan); !got.Allowed {
		t.Fatalf("expected sentinel page limit to behave as unlimited, got %q", got.Message)
	}
}

func TestCanPerform_SocialsUseLinkSentinel(t *testing.T) {
	// Socials share the 999 sentinel with links, so a three-digit limit
	// below it still enforces.
	plan := testPlan()
	plan.MaxSocials = 100

	usage := &models.UsageSnapshot{Socials: 150}
	if got := CanPerform(ActionAddSocial, usage, plan); got.Allowed {
		t.Fatalf("expected denial at 150/100 socials")
	}

	plan.MaxSocials = models.UnlimitedLinksThreshold
	usage.Socials = 1200
	if got := CanPerform(ActionAddSocial, usage, plan); !got.Allowed {
		t.Fatalf("expected sentinel social limit to behave as unlimited, got %q", got.Message)
	}
}
