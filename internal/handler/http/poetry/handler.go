// Package poetry serves the poem-of-the-day endpoint.
package poetry

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	poetryUC "newsboard/internal/usecase/poetry"
)

// Messages is the set of user-facing failure messages. The upstream's own
// text is never shown for this endpoint.
var Messages = respond.UpstreamMessages{
	Rejected:    "获取诗词数据失败",
	Unavailable: "获取诗词数据失败，请稍后重试",
}

// OriginDTO describes the poem a line is quoted from.
type OriginDTO struct {
	Title     string   `json:"title" example:"静夜思"`
	Dynasty   string   `json:"dynasty" example:"唐代"`
	Author    string   `json:"author" example:"李白"`
	Content   []string `json:"content"`
	Translate []string `json:"translate"`
}

// DTO documents the usual shape of the poem of the day. The handler proxies
// the upstream record as received, so unknown fields and empty values are
// kept.
type DTO struct {
	ID                string    `json:"id"`
	Content           string    `json:"content" example:"床前明月光，疑是地上霜。"`
	Popularity        float64   `json:"popularity" example:"1500"`
	Origin            OriginDTO `json:"origin"`
	MatchTags         []string  `json:"matchTags"`
	RecommendedReason string    `json:"recommendedReason"`
	CacheAt           string    `json:"cacheAt,omitempty"`
}

// Handler serves GET /shici.
type Handler struct {
	Svc *poetryUC.Service
}

// ServeHTTP 每日诗词
// @Summary      每日诗词
// @Tags         poetry
// @Produce      json
// @Success      200 {object} Response
// @Failure      400 {object} respond.Envelope "获取诗词数据失败"
// @Failure      500 {object} respond.Envelope "获取诗词数据失败，请稍后重试"
// @Router       /shici [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	entry, err := h.Svc.Today(ctx)
	if err != nil {
		respond.UpstreamFailure(w, logging.FromContext(ctx), err, Messages)
		return
	}

	respond.OK(w, entry.Payload)
}

// Response documents the poetry envelope.
type Response struct {
	Success bool `json:"success" example:"true"`
	Data    DTO  `json:"data"`
}

// Register mounts the poetry route at the root and under /api.
func Register(mux *http.ServeMux, svc *poetryUC.Service) {
	for _, p := range pathutil.Patterns(http.MethodGet, "/shici") {
		mux.Handle(p, Handler{Svc: svc})
	}
}
