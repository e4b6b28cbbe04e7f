package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"nb-query/internal/query/render"
	"nb-query/pkg/response"
)

// Items godoc
// @Summary     Find items
// @Description Runs one search against the note server and returns the filtered items.
// @Tags        Query
// @Produce     json
// @Param       query               query string false "Search text"
// @Param       tags                query string false "Comma separated tags searched when query is empty"
// @Param       filter_type         query string false "Comma separated item types (note, folder, doc, bookmark, todo)"
// @Param       filter_tags         query string false "Keep items with any of these tags"
// @Param       filter_exclude_tags query string false "Drop items with any of these tags"
// @Param       filter_due          query string false "today, this week, overdue, unscheduled or a date phrase"
// @Param       filter_due_before   query string false "Keep items due at or before this date phrase"
// @Param       filter_due_after    query string false "Keep items due at or after this date phrase"
// @Param       limit               query int    false "Keep the first N items"
// @Success     200 {object} itemsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Note server unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query/items [GET]
func (h *handler) Items(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	items, err := h.uc.Find(ctx, req.toSpec())
	if err != nil {
		h.l.Errorf(ctx, "uc.Find: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newItemsResp(items))
}

// Render godoc
// @Summary     Render a query
// @Description Runs one query and returns the rendered list markup, JSON, or the no-results text.
// @Tags        Query
// @Produce     html
// @Produce     json
// @Produce     plain
// @Param       query               query string false "Search text"
// @Param       tags                query string false "Comma separated tags searched when query is empty"
// @Param       filter_type         query string false "Comma separated item types"
// @Param       filter_tags         query string false "Keep items with any of these tags"
// @Param       filter_exclude_tags query string false "Drop items with any of these tags"
// @Param       filter_due          query string false "Due filter"
// @Param       filter_due_before   query string false "Due at or before"
// @Param       filter_due_after    query string false "Due at or after"
// @Param       limit               query int    false "Keep the first N items"
// @Param       format              query string false "list (default) or json"
// @Param       show_icon           query string false "Show icons (y/yes/true/1/on)"
// @Param       show_due_date       query string false "Show due dates"
// @Param       show_tags           query string false "Show tag links"
// @Success     200 {string} string "Rendered output"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Note server unavailable"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/query/render [GET]
func (h *handler) Render(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQueryReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Execute(ctx, req.toSpec())
	if err != nil {
		h.l.Errorf(ctx, "uc.Execute: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Raw(c, out.ContentType, out.Body)
}

// RenderPage godoc
// @Summary     Render a page
// @Description Replaces every data-query placeholder of the posted HTML page with its rendered output. Failed placeholders stay in place marked with data-query-error.
// @Tags        Pages
// @Accept      html
// @Produce     html
// @Param       body body string true "HTML page"
// @Success     200 {string} string "Rendered page"
// @Header      200 {int} X-Query-Count    "Placeholders found"
// @Header      200 {int} X-Query-Failures "Placeholders that failed"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/pages/render [POST]
func (h *handler) RenderPage(c *gin.Context) {
	ctx := c.Request.Context()

	page, err := h.processPageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.RenderPage(ctx, page)
	if err != nil {
		h.l.Errorf(ctx, "uc.RenderPage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("X-Query-Count", strconv.Itoa(out.Queries))
	c.Header("X-Query-Failures", strconv.Itoa(len(out.Failures)))
	response.Raw(c, render.ContentTypeHTML, out.HTML)
}
