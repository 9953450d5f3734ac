package plan

import "strings"

const (
	TierFree    = "free"
	TierBasic   = "basic"
	TierPremium = "premium"
)

// NearLimitPercent is the usage share that raises the advance warning.
const NearLimitPercent = 80

// Limits are the entitlements of a subscription tier. Zero means unlimited.
type Limits struct {
	Tier            string `json:"tier"`
	MaxAppointments int    `json:"max_appointments"`
	MaxAttendants   int    `json:"max_attendants"`
}

// Registry resolves plan names to their limits.
type Registry interface {
	GetPlanLimits(plan string) Limits
}

type StaticRegistry struct{}

func (StaticRegistry) GetPlanLimits(plan string) Limits {
	return LimitsFor(plan)
}

// LimitsFor falls back to the free tier for unknown plans.
func LimitsFor(plan string) Limits {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case TierBasic:
		return Limits{Tier: TierBasic, MaxAppointments: 300, MaxAttendants: 3}
	case TierPremium:
		return Limits{Tier: TierPremium, MaxAppointments: 0, MaxAttendants: 10}
	default:
		return Limits{Tier: TierFree, MaxAppointments: 50, MaxAttendants: 1}
	}
}

func IsKnown(plan string) bool {
	switch strings.ToLower(strings.TrimSpace(plan)) {
	case TierFree, TierBasic, TierPremium:
		return true
	}
	return false
}

type Usage struct {
	Plan         string `json:"plan"`
	CurrentCount int64  `json:"current_count"`
	MaxAllowed   int    `json:"max_allowed"`
	LimitReached bool   `json:"limit_reached"`
	NearLimit    bool   `json:"near_limit"`
}

// Evaluate compares a monthly count with the tier ceiling.
func Evaluate(count int64, limits Limits) Usage {
	u := Usage{
		Plan:         limits.Tier,
		CurrentCount: count,
		MaxAllowed:   limits.MaxAppointments,
	}

	if limits.MaxAppointments <= 0 {
		return u
	}

	max := int64(limits.MaxAppointments)
	u.LimitReached = count >= max
	u.NearLimit = !u.LimitReached && count*100 >= max*NearLimitPercent
	return u
}
