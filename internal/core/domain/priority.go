package domain

const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
	defaultLevel   = PriorityMedium
)

var priorityLevels = map[string]int{
	"Low":    PriorityLow,
	"Medium": PriorityMedium,
	"High":   PriorityHigh,
	"Urgent": PriorityUrgent,
}

// PriorityLevelFromLabel converts the legacy textual priority to its
// canonical integer level. Unrecognized labels fall back to Medium. This is
// the single conversion point; the label is never stored.
func PriorityLevelFromLabel(label string) int {
	if level, ok := priorityLevels[label]; ok {
		return level
	}
	return defaultLevel
}

// PriorityLabel is the display projection of a level.
func PriorityLabel(level int) string {
	switch level {
	case PriorityLow:
		return "Low"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	default:
		return "Medium"
	}
}

// ValidPriorityLevel reports whether level is in the 1..4 range.
func ValidPriorityLevel(level int) bool {
	return level >= PriorityLow && level <= PriorityUrgent
}
