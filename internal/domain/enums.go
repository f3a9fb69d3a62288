package domain

// GoalDimension identifies one tracked sub-dimension of a weekly goal.
type GoalDimension string

const (
	DimSCSessions       GoalDimension = "sc_sessions"
	DimMobilitySessions GoalDimension = "mobility_sessions"
	DimBJJSessions      GoalDimension = "bjj_sessions"
)

// GoalDimensions is the full set of tracked dimensions.
var GoalDimensions = []GoalDimension{DimSCSessions, DimMobilitySessions, DimBJJSessions}

type StatusKind string

const (
	StatusTrainedPlanned StatusKind = "trained_planned"
	StatusTrained        StatusKind = "trained"
	StatusUpcoming       StatusKind = "upcoming"
	StatusGoalNudge      StatusKind = "goal_nudge"
	StatusMissed         StatusKind = "missed"
	StatusIntention      StatusKind = "intention"
)

type IconKind string

const (
	IconCheck   IconKind = "check"
	IconFlame   IconKind = "flame"
	IconClock   IconKind = "clock"
	IconTarget  IconKind = "target"
	IconMoon    IconKind = "moon"
	IconCompass IconKind = "compass"
)

// Well-known class type strings. Schedules may carry other values;
// these are the ones goal tracking understands.
const (
	ClassTypeBJJ      = "bjj"
	ClassTypeSC       = "sc"
	ClassTypeMobility = "mobility"
)

// ValidClassTypes is the canonical set of accepted class type strings.
var ValidClassTypes = map[string]bool{
	"bjj": true, "sc": true, "mobility": true,
	"nogi": true, "judo": true, "wrestling": true,
	"yoga": true, "conditioning": true, "open_mat": true,
}

var classTypeLabels = map[string]string{
	ClassTypeBJJ:      "BJJ",
	ClassTypeSC:       "S&C",
	ClassTypeMobility: "Mobility",
	"nogi":            "No-Gi",
	"judo":            "Judo",
	"wrestling":       "Wrestling",
	"yoga":            "Yoga",
	"conditioning":    "Conditioning",
	"open_mat":        "Open Mat",
}

// ClassTypeLabel returns the display label for a class type string.
// Unknown types render verbatim.
func ClassTypeLabel(classType string) string {
	if label, ok := classTypeLabels[classType]; ok {
		return label
	}
	return classType
}

// DimensionForClassType maps a logged class type to the weekly goal
// dimension it counts toward. The second return is false for class
// types that no dimension tracks.
func DimensionForClassType(classType string) (GoalDimension, bool) {
	switch classType {
	case ClassTypeBJJ, "nogi", "open_mat":
		return DimBJJSessions, true
	case ClassTypeSC, "conditioning":
		return DimSCSessions, true
	case ClassTypeMobility, "yoga":
		return DimMobilitySessions, true
	default:
		return "", false
	}
}

var dimensionLabels = map[GoalDimension]string{
	DimSCSessions:       "S&C",
	DimMobilitySessions: "mobility",
	DimBJJSessions:      "BJJ",
}

// DimensionLabel returns the display label for a goal dimension.
func DimensionLabel(dim GoalDimension) string {
	if label, ok := dimensionLabels[dim]; ok {
		return label
	}
	return string(dim)
}
