package models

import "slices"

// CostRange bounds costPerHour; both ends are inclusive and either may be absent.
type CostRange struct {
	Gte *float64
	Lte *float64
}

// SearchFilter narrows the teacher catalogue. Nil or empty fields add no constraint;
// the constraints that are present are combined with AND.
type SearchFilter struct {
	Subject      *string
	Cost         *CostRange
	Curriculum   *string
	Area         []string
	Grade        []string
	TeachingMode *string
}

// IsEmpty reports whether the filter matches every teacher.
func (f SearchFilter) IsEmpty() bool {
	return f.Subject == nil && f.Cost == nil && f.Curriculum == nil &&
		len(f.Area) == 0 && len(f.Grade) == 0 && f.TeachingMode == nil
}

// Matches evaluates the filter against t in memory. The repository renders the
// same predicate as SQL.
func (f SearchFilter) Matches(t Teacher) bool {
	if f.Subject != nil && !slices.Contains(t.Subjects, *f.Subject) {
		return false
	}
	if f.Cost != nil {
		if f.Cost.Gte != nil && t.CostPerHour < *f.Cost.Gte {
			return false
		}
		if f.Cost.Lte != nil && t.CostPerHour > *f.Cost.Lte {
			return false
		}
	}
	if f.Curriculum != nil && t.Curriculum != *f.Curriculum {
		return false
	}
	if len(f.Area) > 0 && !overlaps(f.Area, t.Area) {
		return false
	}
	if len(f.Grade) > 0 && !overlaps(f.Grade, t.Grade) {
		return false
	}
	if f.TeachingMode != nil && t.TeachingMode != *f.TeachingMode {
		return false
	}
	return true
}

func overlaps(want, have []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
