package dailystatus

import (
	"fmt"
	"time"

	"github.com/tatamilog/tatami/internal/domain"
)

// goalNudgeDays bounds how close to the end of the week the goal nudge
// may fire.
const goalNudgeDays = 4

// Input is everything one evaluation looks at. Now must be captured once
// by the caller and threaded through unchanged, so every predicate sees
// the same instant.
type Input struct {
	Now        time.Time
	Intention  string
	Activities []domain.LoggedActivity
	Classes    []domain.ScheduledClass
	Goals      *domain.WeeklyGoalProgress
}

// Result is the single prioritized status for the day. It is recomputed
// fresh on every call and carries no identity or lifecycle.
type Result struct {
	Kind             domain.StatusKind
	Headline         string
	Subtext          string
	Icon             domain.IconKind
	ShowActionButton bool
}

// Resolve collapses the day's signals into at most one status. Tiers are
// mutually exclusive and evaluated in fixed order; the first match wins.
// A nil return means nothing should be shown. Missing classes, goals, or
// intention simply skip their tiers, never error.
func Resolve(in Input) *Result {
	if r := trainedStatus(in); r != nil {
		return r
	}
	if r := upcomingStatus(in); r != nil {
		return r
	}
	if r := goalNudgeStatus(in); r != nil {
		return r
	}
	if r := missedStatus(in); r != nil {
		return r
	}
	return intentionStatus(in)
}

// trainedStatus covers the two highest tiers. Any logged activity yields
// a result: trained-planned when an effectively-ended class matches a
// logged type, plain trained otherwise.
func trainedStatus(in Input) *Result {
	if len(in.Activities) == 0 {
		return nil
	}
	for _, c := range in.Classes {
		if !EffectivelyEnded(&c, in.Now) {
			continue
		}
		for _, a := range in.Activities {
			if MatchesLoggedType(&c, &a) {
				return &Result{
					Kind:     domain.StatusTrainedPlanned,
					Headline: "Trained as planned",
					Subtext:  c.ClassName,
					Icon:     domain.IconCheck,
				}
			}
		}
	}
	return &Result{
		Kind:     domain.StatusTrained,
		Headline: "Training logged today",
		Icon:     domain.IconFlame,
	}
}

func upcomingStatus(in Input) *Result {
	next := NextUpcoming(in.Classes, in.Now)
	if next == nil {
		return nil
	}
	startClock := AtTimeOfDay(in.Now, next.StartTime).Format("15:04")
	headline := fmt.Sprintf("Class at %s", startClock)
	if label := next.TypeLabel(); label != "" {
		headline = fmt.Sprintf("%s at %s", label, startClock)
	}
	return &Result{
		Kind:     domain.StatusUpcoming,
		Headline: headline,
		Subtext:  next.ClassName,
		Icon:     domain.IconClock,
	}
}

func goalNudgeStatus(in Input) *Result {
	if in.Goals == nil || in.Goals.DaysRemaining > goalNudgeDays {
		return nil
	}
	gaps := AnalyzeGoalGaps(in.Goals)
	if len(gaps) == 0 {
		return nil
	}
	top := gaps[0]
	noun := "sessions"
	if top.Amount == 1 {
		noun = "session"
	}
	unit := "days"
	if in.Goals.DaysRemaining == 1 {
		unit = "day"
	}
	return &Result{
		Kind:             domain.StatusGoalNudge,
		Headline:         fmt.Sprintf("%d %s %s to go this week", top.Amount, domain.DimensionLabel(top.Dimension), noun),
		Subtext:          fmt.Sprintf("%d %s left", in.Goals.DaysRemaining, unit),
		Icon:             domain.IconTarget,
		ShowActionButton: true,
	}
}

// missedStatus fires only when every scheduled class has nominally ended.
// A single still-ongoing or future class disqualifies it.
func missedStatus(in Input) *Result {
	if len(in.Classes) == 0 {
		return nil
	}
	for _, c := range in.Classes {
		if !EndedNominally(&c, in.Now) {
			return nil
		}
	}
	return &Result{
		Kind:     domain.StatusMissed,
		Headline: "Today's classes have passed",
		Subtext:  "There's always tomorrow",
		Icon:     domain.IconMoon,
	}
}

func intentionStatus(in Input) *Result {
	if in.Intention == "" {
		return nil
	}
	return &Result{
		Kind:             domain.StatusIntention,
		Headline:         in.Intention,
		Subtext:          "Carried from yesterday",
		Icon:             domain.IconCompass,
		ShowActionButton: true,
	}
}
