package news

import (
	"net/http"

	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	newsUC "newsboard/internal/usecase/news"
)

// CategoriesHandler serves GET /news/categories.
type CategoriesHandler struct {
	Svc *newsUC.Service
}

// ServeHTTP 新闻分类
// @Summary      新闻分类列表
// @Tags         news
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} respond.Envelope "获取新闻数据失败"
// @Router       /news/categories [get]
func (h CategoriesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, logging.FromContext(r.Context()),
			respond.NewAppError(http.StatusInternalServerError, ListFailedMessage, err))
		return
	}
	respond.OK(w, categories)
}

// CategoriesResponse documents the categories envelope.
type CategoriesResponse struct {
	Success bool     `json:"success" example:"true"`
	Data    []string `json:"data"`
}
