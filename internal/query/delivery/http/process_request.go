package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const maxPageBytes = 4 << 20

// processQueryReq binds and validates the query parameters of a query request.
func (h *handler) processQueryReq(c *gin.Context) (queryReq, error) {
	var req queryReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}

// processPageReq reads the HTML page from the request body.
func (h *handler) processPageReq(c *gin.Context) (string, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPageBytes)
	body, err := c.GetRawData()
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}
	if len(body) == 0 {
		return "", fmt.Errorf("page body is required")
	}
	return string(body), nil
}
