package filter

import (
	"time"

	"nb-query/internal/model"
	"nb-query/pkg/datemath"
)

// Predicate reports whether an item with the given due date passes a due filter.
// A nil due means the item is unscheduled.
type Predicate func(due *time.Time) bool

// PhraseResolver resolves a free-text date phrase relative to ref.
type PhraseResolver interface {
	Parse(phrase string, ref time.Time) (time.Time, error)
}

// Calendar does the period arithmetic behind the symbolic due ranges.
type Calendar interface {
	StartOf(u datemath.Unit, t time.Time) time.Time
	Add(u datemath.Unit, t time.Time, n int) time.Time
	EndOf(u datemath.Unit, start time.Time) time.Time
}

// Options selects the stages of a pipeline run. Zero values disable a stage.
type Options struct {
	Types       []model.ItemType
	IncludeTags []string
	ExcludeTags []string
	Due         string
	DueBefore   string
	DueAfter    string
	Limit       int
}
