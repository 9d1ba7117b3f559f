package ui

// Regions is the set of display regions visible at once. Each controller
// state maps to exactly one configuration; the View renders only the
// active regions.
type Regions uint8

const (
	RegionInstructions Regions = 1 << iota
	RegionSpinner
	RegionError
	RegionArabic
	RegionTranslation
	RegionTopic
	RegionMap
)

// Has reports whether r includes all regions in q.
func (r Regions) Has(q Regions) bool { return r&q == q }

// regionsFor is the fixed visibility table keyed by controller state.
func regionsFor(s state) Regions {
	switch s {
	case stateLoading:
		return RegionSpinner
	case stateError:
		return RegionError
	case stateLoaded:
		return RegionArabic | RegionTranslation | RegionTopic | RegionMap
	default:
		return RegionInstructions
	}
}
