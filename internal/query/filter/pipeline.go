// Package filter narrows parsed search results down to what a query asked for.
package filter

import (
	"strings"
	"time"

	"nb-query/internal/model"
)

// Pipeline runs the filter stages in their fixed order:
// dedup, type, included tags, excluded tags, due, due before, due after, limit.
type Pipeline struct {
	due *DueResolver
}

// NewPipeline creates a Pipeline that resolves due filters with due.
func NewPipeline(due *DueResolver) *Pipeline {
	return &Pipeline{due: due}
}

// Apply filters items. The input is never modified and the relative order of
// the survivors is kept, so applying the same options twice changes nothing.
func (p *Pipeline) Apply(items []model.FoundItem, opt Options, now time.Time) ([]model.FoundItem, error) {
	out := Dedup(items)

	if len(opt.Types) > 0 {
		out = keep(out, func(it model.FoundItem) bool {
			for _, t := range opt.Types {
				if it.Type == t {
					return true
				}
			}
			return false
		})
	}
	if len(opt.IncludeTags) > 0 {
		out = keep(out, func(it model.FoundItem) bool { return it.HasAnyTag(opt.IncludeTags) })
	}
	if len(opt.ExcludeTags) > 0 {
		out = keep(out, func(it model.FoundItem) bool { return !it.HasAnyTag(opt.ExcludeTags) })
	}

	dueStages := []struct {
		value   string
		resolve func(string, time.Time) (Predicate, error)
	}{
		{opt.Due, p.due.Resolve},
		{opt.DueBefore, p.due.Before},
		{opt.DueAfter, p.due.After},
	}
	for _, st := range dueStages {
		value := strings.TrimSpace(st.value)
		if value == "" {
			continue
		}
		pred, err := st.resolve(value, now)
		if err != nil {
			return nil, err
		}
		out = keep(out, func(it model.FoundItem) bool { return pred(it.DueDate) })
	}

	return Limit(out, opt.Limit), nil
}

// Dedup keeps the first item of every id.
func Dedup(items []model.FoundItem) []model.FoundItem {
	seen := make(map[string]bool, len(items))
	return keep(items, func(it model.FoundItem) bool {
		if seen[it.ID] {
			return false
		}
		seen[it.ID] = true
		return true
	})
}

// Limit keeps the first n items. n <= 0 keeps everything.
func Limit(items []model.FoundItem, n int) []model.FoundItem {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n:n]
}

func keep(items []model.FoundItem, fn func(model.FoundItem) bool) []model.FoundItem {
	out := make([]model.FoundItem, 0, len(items))
	for _, it := range items {
		if fn(it) {
			out = append(out, it)
		}
	}
	return out
}
