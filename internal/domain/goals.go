package domain

// WeeklyGoalProgress is a point-in-time snapshot of the current week's
// goal targets against logged actuals. A dimension absent from Targets
// has no target set; a dimension absent from Actuals has no usable
// actual (tracking unavailable), which is distinct from an actual of 0.
type WeeklyGoalProgress struct {
	Targets       map[GoalDimension]int
	Actuals       map[GoalDimension]int
	DaysRemaining int
}

// Target returns the target for dim and whether one is set.
func (p *WeeklyGoalProgress) Target(dim GoalDimension) (int, bool) {
	v, ok := p.Targets[dim]
	return v, ok
}

// Actual returns the logged actual for dim and whether one is known.
func (p *WeeklyGoalProgress) Actual(dim GoalDimension) (int, bool) {
	v, ok := p.Actuals[dim]
	return v, ok
}
