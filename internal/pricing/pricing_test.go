package pricing

import (
	"reflect"
	"testing"
)

func TestCalculateTierSelection(t *testing.T) {
	tests := []struct {
		name     string
		usage    Usage
		wantPlan string
	}{
		{
			name:     "Within Basic limits",
			usage:    Usage{AdSpaces: 5, Campaigns: 2, TeamMembers: 1, StorageGB: 5},
			wantPlan: "Basic Plan",
		},
		{
			name:     "At Basic limits stays Basic",
			usage:    Usage{AdSpaces: 10, Campaigns: 5, TeamMembers: 1, StorageGB: 10},
			wantPlan: "Basic Plan",
		},
		{
			name:     "Ad spaces beyond Basic promotes to Business",
			usage:    Usage{AdSpaces: 11, Campaigns: 1, TeamMembers: 1, StorageGB: 1},
			wantPlan: "Business Plan",
		},
		{
			name:     "Campaigns beyond Basic promotes to Business",
			usage:    Usage{AdSpaces: 1, Campaigns: 6, TeamMembers: 1, StorageGB: 1},
			wantPlan: "Business Plan",
		},
		{
			name:     "Storage beyond Basic promotes to Business",
			usage:    Usage{AdSpaces: 1, Campaigns: 1, TeamMembers: 1, StorageGB: 11},
			wantPlan: "Business Plan",
		},
		{
			name:     "At Business limits stays Business",
			usage:    Usage{AdSpaces: 100, Campaigns: 20, TeamMembers: 1, StorageGB: 50},
			wantPlan: "Business Plan",
		},
		{
			name:     "Ad spaces beyond Business promotes to Enterprise",
			usage:    Usage{AdSpaces: 150, Campaigns: 5, TeamMembers: 1, StorageGB: 10},
			wantPlan: "Enterprise Plan",
		},
		{
			name:     "Campaigns beyond Business promotes to Enterprise",
			usage:    Usage{AdSpaces: 5, Campaigns: 21, TeamMembers: 1, StorageGB: 10},
			wantPlan: "Enterprise Plan",
		},
		{
			name:     "Storage beyond Business promotes to Enterprise",
			usage:    Usage{AdSpaces: 5, Campaigns: 5, TeamMembers: 1, StorageGB: 51},
			wantPlan: "Enterprise Plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.usage)
			if q.Plan.Name != tt.wantPlan {
				t.Errorf("Calculate(%+v).Plan.Name = %s, want %s", tt.usage, q.Plan.Name, tt.wantPlan)
			}
		})
	}
}

func TestCalculateCosts(t *testing.T) {
	tests := []struct {
		name          string
		usage         Usage
		wantTotal     float64
		wantOverage   float64
		wantSurcharge float64
	}{
		{
			name:      "Basic, single user, no extras",
			usage:     Usage{AdSpaces: 5, Campaigns: 2, TeamMembers: 1, StorageGB: 5},
			wantTotal: 10,
		},
		{
			name:          "Business within limits, team of three",
			usage:         Usage{AdSpaces: 50, Campaigns: 10, TeamMembers: 3, StorageGB: 20},
			wantTotal:     30, // 20 base + 2×5 team
			wantSurcharge: 10,
		},
		{
			name:      "Enterprise pays base only",
			usage:     Usage{AdSpaces: 150, Campaigns: 5, TeamMembers: 1, StorageGB: 10},
			wantTotal: 40,
		},
		{
			name:          "Enterprise with large team",
			usage:         Usage{AdSpaces: 500, Campaigns: 50, TeamMembers: 10, StorageGB: 400},
			wantTotal:     85, // 40 base + 9×5 team
			wantSurcharge: 45,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Calculate(tt.usage)
			if q.Total != tt.wantTotal {
				t.Errorf("Total = %.2f, want %.2f", q.Total, tt.wantTotal)
			}
			if q.Overage != tt.wantOverage {
				t.Errorf("Overage = %.2f, want %.2f", q.Overage, tt.wantOverage)
			}
			if q.TeamSurcharge != tt.wantSurcharge {
				t.Errorf("TeamSurcharge = %.2f, want %.2f", q.TeamSurcharge, tt.wantSurcharge)
			}
			if q.Base != q.Plan.BasePrice {
				t.Errorf("Base = %.2f, want plan base %.2f", q.Base, q.Plan.BasePrice)
			}
			if q.Total != round2(q.Base+q.Overage+q.TeamSurcharge) {
				t.Error("Total does not equal sum of breakdown components")
			}
		})
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	u := Usage{AdSpaces: 42, Campaigns: 7, TeamMembers: 4, StorageGB: 33}

	first := Calculate(u)
	for i := 0; i < 5; i++ {
		if got := Calculate(u); !reflect.DeepEqual(got, first) {
			t.Fatalf("Calculate diverged on call %d: %+v vs %+v", i, got, first)
		}
	}
}

func TestUsageValidate(t *testing.T) {
	tests := []struct {
		name      string
		usage     Usage
		wantError bool
	}{
		{
			name:  "Valid",
			usage: Usage{AdSpaces: 1, Campaigns: 1, TeamMembers: 1, StorageGB: 1},
		},
		{
			name:      "Negative ad spaces",
			usage:     Usage{AdSpaces: -1, Campaigns: 1, TeamMembers: 1, StorageGB: 1},
			wantError: true,
		},
		{
			name:      "Negative campaigns",
			usage:     Usage{AdSpaces: 1, Campaigns: -1, TeamMembers: 1, StorageGB: 1},
			wantError: true,
		},
		{
			name:      "Negative storage",
			usage:     Usage{AdSpaces: 1, Campaigns: 1, TeamMembers: 1, StorageGB: -1},
			wantError: true,
		},
		{
			name:      "Zero team members",
			usage:     Usage{AdSpaces: 1, Campaigns: 1, TeamMembers: 0, StorageGB: 1},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.usage.Validate()
			if tt.wantError && err == nil {
				t.Error("Validate() expected error, got nil")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestPlansCatalog(t *testing.T) {
	plans := Plans()
	if len(plans) != 3 {
		t.Fatalf("expected 3 plans, got %d", len(plans))
	}

	wantNames := []string{"Basic Plan", "Business Plan", "Enterprise Plan"}
	for i, name := range wantNames {
		if plans[i].Name != name {
			t.Errorf("plan %d = %s, want %s", i, plans[i].Name, name)
		}
	}

	// Ascending by capability and price.
	if !(plans[0].BasePrice < plans[1].BasePrice && plans[1].BasePrice < plans[2].BasePrice) {
		t.Error("plans not ordered by ascending base price")
	}
	if plans[2].AdSpaceLimit != Unlimited || plans[2].CampaignLimit != Unlimited {
		t.Error("Enterprise ad spaces and campaigns should be unlimited")
	}

	// Mutating the returned slice must not affect the catalog.
	plans[0].BasePrice = 999
	if Plans()[0].BasePrice != 10 {
		t.Error("catalog mutated through returned slice")
	}
}
