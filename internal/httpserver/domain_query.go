package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	queryHTTP "nb-query/internal/query/delivery/http"
)

// setupQueryDomain registers the query and page rendering routes.
func (srv HTTPServer) setupQueryDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := queryHTTP.New(srv.l, srv.queryUC)

	// Routes: /api/v1/query/items, /api/v1/query/render, /api/v1/pages/render
	queryHTTP.RegisterRoutes(api, h, srv.mw)

	srv.l.Infof(ctx, "Query domain registered")
	return nil
}
