package http

import (
	"strings"

	"nb-query/internal/model"
	"nb-query/internal/query"
	"nb-query/pkg/response"
)

// --- Request DTOs ---

type queryReq struct {
	Query             string  `form:"query"`
	Tags              string  `form:"tags"`
	FilterType        string  `form:"filter_type"`
	FilterTags        string  `form:"filter_tags"`
	FilterExcludeTags string  `form:"filter_exclude_tags"`
	FilterDue         string  `form:"filter_due"`
	FilterDueBefore   string  `form:"filter_due_before"`
	FilterDueAfter    string  `form:"filter_due_after"`
	Limit             int     `form:"limit"     binding:"omitempty,min=0"`
	Format            string  `form:"format"    binding:"omitempty,oneof=list json"`
	ShowIcon          *string `form:"show_icon"`
	ShowDueDate       *string `form:"show_due_date"`
	ShowTags          *string `form:"show_tags"`
}

func (r *queryReq) validate() error {
	r.Query = strings.TrimSpace(r.Query)
	r.FilterDue = strings.TrimSpace(r.FilterDue)
	r.FilterDueBefore = strings.TrimSpace(r.FilterDueBefore)
	r.FilterDueAfter = strings.TrimSpace(r.FilterDueAfter)
	return nil
}

func (r queryReq) toSpec() query.Spec {
	show := func(v *string) bool { return v == nil || query.IsTruthy(*v) }
	return query.Spec{
		Query:       r.Query,
		Tags:        query.SplitList(r.Tags),
		Types:       query.SplitList(r.FilterType),
		IncludeTags: query.SplitList(r.FilterTags),
		ExcludeTags: query.SplitList(r.FilterExcludeTags),
		Due:         r.FilterDue,
		DueBefore:   r.FilterDueBefore,
		DueAfter:    r.FilterDueAfter,
		Limit:       r.Limit,
		Format:      query.ParseFormat(r.Format),
		Display: query.Display{
			Icon:    show(r.ShowIcon),
			DueDate: show(r.ShowDueDate),
			Tags:    show(r.ShowTags),
		},
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID       string             `json:"id"`
	URL      string             `json:"url"`
	Title    string             `json:"title"`
	Type     string             `json:"type"`
	Icon     string             `json:"icon"`
	IsPinned bool               `json:"is_pinned"`
	Tags     []string           `json:"tags"`
	DueDate  *response.DateTime `json:"due_date" swaggertype:"string"`
}

func newItemResp(item model.FoundItem) itemResp {
	return itemResp{
		ID:       item.ID,
		URL:      item.URL,
		Title:    item.Title,
		Type:     string(item.Type),
		Icon:     item.Icon,
		IsPinned: item.IsPinned,
		Tags:     item.Tags,
		DueDate:  response.NewDateTime(item.DueDate),
	}
}

type itemsResp struct {
	Items []itemResp `json:"items"`
	Total int        `json:"total"`
}

func (h *handler) newItemsResp(items []model.FoundItem) itemsResp {
	resp := itemsResp{Items: make([]itemResp, len(items)), Total: len(items)}
	for i, item := range items {
		resp.Items[i] = newItemResp(item)
	}
	return resp
}
