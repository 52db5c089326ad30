package news

import (
	"net/http"

	"newsboard/internal/common/pagination"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	newsUC "newsboard/internal/usecase/news"
)

// ListFailedMessage is returned when the provider cannot list news.
const ListFailedMessage = "获取新闻数据失败"

// ListHandler serves GET /news.
type ListHandler struct {
	Svc           *newsUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP 新闻列表
// @Summary      新闻列表（分页）
// @Description  按分类筛选并分页返回新闻。category 为空或 all 时不筛选；page、pageSize 非法时使用默认值。
// @Tags         news
// @Produce      json
// @Param        category  query    string  false  "分类，all 表示全部"
// @Param        page      query    int     false  "页码 (1-based)" default(1) minimum(1)
// @Param        pageSize  query    int     false  "每页条数" default(10) minimum(1) maximum(100)
// @Success      200 {object} ListResponse
// @Failure      500 {object} respond.Envelope "获取新闻数据失败"
// @Router       /news [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	q := r.URL.Query()
	params := pagination.Parse(q, h.PaginationCfg)
	category := q.Get("category")
	obs := pagination.Observe(logger, category, params)

	page, err := h.Svc.List(ctx, newsUC.ListInput{Category: category, Params: params})
	if err != nil {
		obs.Fail(err)
		respond.SafeError(w, logger, respond.NewAppError(http.StatusInternalServerError, ListFailedMessage, err))
		return
	}

	dtos := make([]DTO, 0, len(page.Items))
	for _, item := range page.Items {
		dtos = append(dtos, toDTO(item))
	}

	obs.Done(len(dtos), page.Total)
	respond.Paged(w, dtos, page.Total, page.Page, page.PageSize)
}

// ListResponse documents the list envelope.
type ListResponse struct {
	Success  bool  `json:"success" example:"true"`
	Data     []DTO `json:"data"`
	Total    int   `json:"total" example:"6"`
	Page     int   `json:"page" example:"1"`
	PageSize int   `json:"pageSize" example:"10"`
}
