package model

import (
	"strings"
	"time"
)

// ItemType is the kind of a note-server result, decided once from its glyph.
type ItemType string

const (
	ItemTypeNote     ItemType = "note"
	ItemTypeFolder   ItemType = "folder"
	ItemTypeDoc      ItemType = "doc"
	ItemTypeBookmark ItemType = "bookmark"
	ItemTypeTodo     ItemType = "todo"
)

// PinGlyph marks a pinned item.
const PinGlyph = "📌"

// ItemTypes lists every item type in glyph detection priority order.
var ItemTypes = []ItemType{
	ItemTypeNote,
	ItemTypeFolder,
	ItemTypeDoc,
	ItemTypeBookmark,
	ItemTypeTodo,
}

// itemTypeGlyphs lists the glyphs that mark each type; the first one is the
// type's icon. nb shows open todos as ✔️ and done todos as ✅.
var itemTypeGlyphs = map[ItemType][]string{
	ItemTypeNote:     {"📔"},
	ItemTypeFolder:   {"📂"},
	ItemTypeDoc:      {"📄"},
	ItemTypeBookmark: {"🔖"},
	ItemTypeTodo:     {"✔️", "✅", "✔"},
}

// Icon returns the glyph of the type.
func (t ItemType) Icon() string {
	if glyphs, ok := itemTypeGlyphs[t]; ok {
		return glyphs[0]
	}
	return "📝"
}

// Glyphs returns every glyph that marks the type, longest variants first.
func (t ItemType) Glyphs() []string {
	return itemTypeGlyphs[t]
}

// IsValid reports whether t is one of the known item types.
func (t ItemType) IsValid() bool {
	_, ok := itemTypeGlyphs[t]
	return ok
}

// ParseItemType maps a filter token such as " Todo " to its ItemType.
func ParseItemType(s string) (ItemType, bool) {
	t := ItemType(strings.ToLower(strings.TrimSpace(s)))
	return t, t.IsValid()
}

// FoundItem is a search result parsed from a note-server row. It is never
// modified after parsing.
type FoundItem struct {
	ID       string     `json:"id"`
	URL      string     `json:"url"`
	Title    string     `json:"title"`
	Type     ItemType   `json:"type"`
	Icon     string     `json:"icon"`
	IsPinned bool       `json:"isPinned"`
	Tags     []string   `json:"tags"`
	DueDate  *time.Time `json:"dueDate"`
}

// HasAnyTag reports whether the item carries at least one of tags.
func (i FoundItem) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range i.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}
