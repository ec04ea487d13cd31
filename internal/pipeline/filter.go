package pipeline

import (
	"go-activity-stats/internal/model"
)

// Predicate selects the activities a scan accumulates
type Predicate interface {
	Match(a *model.Activity) bool
}

// PredicateFunc adapts a plain function to Predicate
type PredicateFunc func(a *model.Activity) bool

func (f PredicateFunc) Match(a *model.Activity) bool { return f(a) }

// All matches every activity
type All struct{}

func (All) Match(*model.Activity) bool { return true }

// KnownCategories are the categories with a column of their own.
var KnownCategories = []model.Category{model.Running, model.Walking, model.Cycling}

// CategoryIs matches the raw activity type exactly
type CategoryIs model.Category

func (c CategoryIs) Match(a *model.Activity) bool {
	return a.Type == string(c)
}

// CategoryIn matches any of the listed types
type CategoryIn []model.Category

func (c CategoryIn) Match(a *model.Activity) bool {
	for _, cat := range c {
		if a.Type == string(cat) {
			return true
		}
	}
	return false
}

// CategoryNotIn matches types outside the listed set
type CategoryNotIn []model.Category

func (c CategoryNotIn) Match(a *model.Activity) bool {
	return !CategoryIn(c).Match(a)
}

// YearIs matches activities dated in a single calendar year
type YearIs int

func (y YearIs) Match(a *model.Activity) bool {
	return a.Date.Year() == int(y)
}

// YearBetween matches years in [From, To], both inclusive
type YearBetween struct {
	From, To int
}

func (y YearBetween) Match(a *model.Activity) bool {
	year := a.Date.Year()
	return year >= y.From && year <= y.To
}

// And matches when every predicate matches. An empty And matches everything.
type And []Predicate

func (p And) Match(a *model.Activity) bool {
	for _, pred := range p {
		if !pred.Match(a) {
			return false
		}
	}
	return true
}

// Or matches when any predicate matches
type Or []Predicate

func (p Or) Match(a *model.Activity) bool {
	for _, pred := range p {
		if pred.Match(a) {
			return true
		}
	}
	return false
}

// Not inverts a predicate
type Not struct {
	Predicate
}

func (n Not) Match(a *model.Activity) bool {
	return !n.Predicate.Match(a)
}

// Column is one labelled category column of the report
type Column struct {
	Label  string
	Filter Predicate
}

// DefaultColumns returns Run, Walk, Cycle, Other and All in that order.
func DefaultColumns() []Column {
	return []Column{
		{Label: model.LabelRun, Filter: CategoryIs(model.Running)},
		{Label: model.LabelWalk, Filter: CategoryIs(model.Walking)},
		{Label: model.LabelCycle, Filter: CategoryIs(model.Cycling)},
		{Label: model.LabelOther, Filter: CategoryNotIn(KnownCategories)},
		{Label: model.LabelAll, Filter: All{}},
	}
}

// SelectColumns keeps the default columns whose labels are listed, in the
// default order. An empty selection keeps all of them.
func SelectColumns(labels []string) []Column {
	columns := DefaultColumns()
	if len(labels) == 0 {
		return columns
	}
	want := make(map[string]bool, len(labels))
	for _, l := range labels {
		want[l] = true
	}
	selected := columns[:0]
	for _, c := range columns {
		if want[c.Label] {
			selected = append(selected, c)
		}
	}
	return selected
}
