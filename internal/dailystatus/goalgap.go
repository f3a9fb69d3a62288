package dailystatus

import "github.com/tatamilog/tatami/internal/domain"

// GapPriority is the canonical reporting order among simultaneous goal
// gaps. Callers surface the first gap in this order, not the largest one.
// New dimensions must be appended here explicitly.
var GapPriority = []domain.GoalDimension{
	domain.DimSCSessions,
	domain.DimMobilitySessions,
	domain.DimBJJSessions,
}

// GoalGap is the shortfall between a dimension's target and its actual.
type GoalGap struct {
	Dimension domain.GoalDimension
	Amount    int
}

// AnalyzeGoalGaps scans the goal dimensions in priority order and returns
// the unmet-target gaps. A dimension with no target, or with no known
// actual, is excluded rather than treated as a gap of zero. Nil progress
// yields no gaps.
func AnalyzeGoalGaps(p *domain.WeeklyGoalProgress) []GoalGap {
	if p == nil {
		return nil
	}
	var gaps []GoalGap
	for _, dim := range GapPriority {
		target, ok := p.Target(dim)
		if !ok {
			continue
		}
		actual, ok := p.Actual(dim)
		if !ok {
			continue
		}
		if target > actual {
			gaps = append(gaps, GoalGap{Dimension: dim, Amount: target - actual})
		}
	}
	return gaps
}
