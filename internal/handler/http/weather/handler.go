package weather

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	weatherUC "newsboard/internal/usecase/weather"
)

// Messages is the set of user-facing failure messages.
var Messages = respond.UpstreamMessages{
	Rejected:            "获取天气数据失败",
	Unavailable:         "获取天气数据失败，请稍后重试",
	PassUpstreamMessage: true,
}

// Handler serves GET /weather.
type Handler struct {
	Svc *weatherUC.Service
}

// ServeHTTP 实时天气
// @Summary      实时天气
// @Description  查询城市当前天气。city 为空时使用配置的默认城市。weatherDesc 统一为字符串。
// @Tags         weather
// @Produce      json
// @Param        city  query    string  false  "城市名" default(Shenzhen)
// @Success      200 {object} Response
// @Failure      400 {object} respond.Envelope "上游返回失败状态"
// @Failure      500 {object} respond.Envelope "获取天气数据失败，请稍后重试"
// @Router       /weather [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	snapshot, err := h.Svc.Current(ctx, r.URL.Query().Get("city"))
	if err != nil {
		respond.UpstreamFailure(w, logging.FromContext(ctx), err, Messages)
		return
	}

	respond.OK(w, toBody(snapshot))
}

// Response documents the weather envelope.
type Response struct {
	Success bool `json:"success" example:"true"`
	Data    DTO  `json:"data"`
}

// Register mounts the weather route at the root and under /api.
func Register(mux *http.ServeMux, svc *weatherUC.Service) {
	for _, p := range pathutil.Patterns(http.MethodGet, "/weather") {
		mux.Handle(p, Handler{Svc: svc})
	}
}
