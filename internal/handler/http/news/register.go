package news

import (
	"net/http"

	"newsboard/internal/common/pagination"
	"newsboard/internal/handler/http/pathutil"
	newsUC "newsboard/internal/usecase/news"
)

// Register mounts the news routes at the root and under /api.
// /news/categories is more specific than /news/{id} and wins.
func Register(mux *http.ServeMux, svc *newsUC.Service, paginationCfg pagination.Config) {
	for _, p := range pathutil.Patterns(http.MethodGet, "/news") {
		mux.Handle(p, ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	}
	for _, p := range pathutil.Patterns(http.MethodGet, "/news/categories") {
		mux.Handle(p, CategoriesHandler{Svc: svc})
	}
	for _, p := range pathutil.Patterns(http.MethodGet, "/news/{id}") {
		mux.Handle(p, GetHandler{Svc: svc})
	}
}
