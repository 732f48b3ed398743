// Package pricing implements the usage-based plan recommendation and cost
// calculator for the three-tier catalog.
//
// Tier selection promotes on the limits of the next-lower tier: usage beyond
// Basic's limits recommends Business, usage beyond Business's limits
// recommends Enterprise. Only Business accrues per-unit overage; Enterprise
// is unlimited by definition, and Basic users who outgrow their limits are
// promoted rather than surcharged. Everything here is pure and deterministic,
// so callers compute a quote once per request and reuse it for any breakdown
// display.
package pricing

import (
	"fmt"
	"math"
)

// Per-unit rates in dollars.
const (
	PerAdSpaceOverage  = 0.50
	PerCampaignOverage = 2.00
	PerGBOverage       = 0.10
	PerTeamMember      = 5.00
)

// Unlimited marks a plan limit with no cap.
const Unlimited = -1

// Plan is one tier of the static catalog.
type Plan struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	BasePrice      float64  `json:"base_price"`
	AdSpaceLimit   int      `json:"ad_space_limit"`   // Unlimited = no cap
	CampaignLimit  int      `json:"campaign_limit"`   // Unlimited = no cap
	StorageLimitGB int      `json:"storage_limit_gb"`
	Features       []string `json:"features"`
	Popular        bool     `json:"popular"`
}

// Usage is the customer's monthly usage vector.
type Usage struct {
	AdSpaces    int `json:"ad_spaces"`
	Campaigns   int `json:"campaigns"`
	TeamMembers int `json:"team_members"`
	StorageGB   int `json:"storage_gb"`
}

// Validate rejects usage vectors outside the calculator's domain.
func (u Usage) Validate() error {
	if u.AdSpaces < 0 {
		return fmt.Errorf("ad_spaces cannot be negative, got %d", u.AdSpaces)
	}
	if u.Campaigns < 0 {
		return fmt.Errorf("campaigns cannot be negative, got %d", u.Campaigns)
	}
	if u.StorageGB < 0 {
		return fmt.Errorf("storage_gb cannot be negative, got %d", u.StorageGB)
	}
	if u.TeamMembers < 1 {
		return fmt.Errorf("team_members must be at least 1, got %d", u.TeamMembers)
	}
	return nil
}

// Quote is the recommended plan plus the cost breakdown for a usage vector.
type Quote struct {
	Plan          Plan    `json:"plan"`
	Base          float64 `json:"base"`
	Overage       float64 `json:"overage"`
	TeamSurcharge float64 `json:"team_surcharge"`
	Total         float64 `json:"total"`
}

var basic = Plan{
	Name:           "Basic Plan",
	Description:    "Best for individual advertisers & freelancers",
	BasePrice:      10,
	AdSpaceLimit:   10,
	CampaignLimit:  5,
	StorageLimitGB: 10,
	Features: []string{
		"Access to hyperlocal ad spaces",
		"Basic campaign management tools",
		"Up to 10 ad listings/month",
		"10GB storage for creatives",
		"Standard email support",
	},
}

var business = Plan{
	Name:           "Business Plan",
	Description:    "Best for growing ad agencies",
	BasePrice:      20,
	AdSpaceLimit:   100,
	CampaignLimit:  20,
	StorageLimitGB: 50,
	Features: []string{
		"Includes everything in Basic",
		"Up to 100 ad listings/month",
		"White-label portal access",
		"Real-time performance tracking",
		"Priority email + chat support",
	},
	Popular: true,
}

var enterprise = Plan{
	Name:           "Enterprise Plan",
	Description:    "Best for enterprise media partners & API users",
	BasePrice:      40,
	AdSpaceLimit:   Unlimited,
	CampaignLimit:  Unlimited,
	StorageLimitGB: 200,
	Features: []string{
		"Includes everything in Business",
		"Unlimited ad listings",
		"Dedicated account manager",
		"Access to campaign APIs",
		"24/7 support and SLAs",
	},
}

// Plans returns the catalog, ordered ascending by capability. The slice is a
// copy; the catalog itself is immutable.
func Plans() []Plan {
	return []Plan{basic, business, enterprise}
}

// Calculate maps a usage vector to the recommended plan and total monthly
// cost. Pure and idempotent.
func Calculate(u Usage) Quote {
	var plan Plan
	switch {
	case u.AdSpaces > business.AdSpaceLimit ||
		u.Campaigns > business.CampaignLimit ||
		u.StorageGB > business.StorageLimitGB:
		plan = enterprise
	case u.AdSpaces > basic.AdSpaceLimit ||
		u.Campaigns > basic.CampaignLimit ||
		u.StorageGB > basic.StorageLimitGB:
		plan = business
	default:
		plan = basic
	}

	q := Quote{
		Plan: plan,
		Base: plan.BasePrice,
	}

	// Overage applies only on the Business tier, measured against Business's
	// own limits.
	if plan.Name == business.Name {
		q.Overage = float64(max(0, u.AdSpaces-plan.AdSpaceLimit))*PerAdSpaceOverage +
			float64(max(0, u.Campaigns-plan.CampaignLimit))*PerCampaignOverage +
			float64(max(0, u.StorageGB-plan.StorageLimitGB))*PerGBOverage
	}

	if u.TeamMembers > 1 {
		q.TeamSurcharge = float64(u.TeamMembers-1) * PerTeamMember
	}

	q.Total = round2(q.Base + q.Overage + q.TeamSurcharge)
	return q
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
