// Package wallpaper serves the daily wallpaper endpoint.
package wallpaper

import (
	"net/http"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	wallpaperUC "newsboard/internal/usecase/wallpaper"
)

// Messages is the set of user-facing failure messages.
var Messages = respond.UpstreamMessages{
	Rejected:            "获取壁纸数据失败",
	Unavailable:         "获取壁纸数据失败，请稍后重试",
	PassUpstreamMessage: true,
}

// ImageDTO documents one wallpaper with upstream field names. Images are
// proxied as received, so fields not listed here are kept.
type ImageDTO struct {
	StartDate     string `json:"startdate" example:"20240115"`
	FullStartDate string `json:"fullstartdate" example:"202401151600"`
	EndDate       string `json:"enddate" example:"20240116"`
	URL           string `json:"url"`
	URLBase       string `json:"urlbase"`
	Copyright     string `json:"copyright"`
	CopyrightLink string `json:"copyrightlink"`
	Title         string `json:"title"`
}

// DTO wraps the image list.
type DTO struct {
	Images []ImageDTO `json:"images"`
}

// Handler serves GET /bing.
type Handler struct {
	Svc *wallpaperUC.Service
}

// ServeHTTP 每日壁纸
// @Summary      每日壁纸
// @Description  n 取前导整数并限制在 1..8，缺省或非数字时为 1。
// @Tags         wallpaper
// @Produce      json
// @Param        n  query    int  false  "图片数量" default(1) minimum(1) maximum(8)
// @Success      200 {object} Response
// @Failure      400 {object} respond.Envelope "上游返回失败状态"
// @Failure      500 {object} respond.Envelope "获取壁纸数据失败，请稍后重试"
// @Router       /bing [get]
func (h Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	set, err := h.Svc.Latest(ctx, wallpaperUC.ClampCount(r.URL.Query().Get("n")))
	if err != nil {
		respond.UpstreamFailure(w, logging.FromContext(ctx), err, Messages)
		return
	}

	respond.OK(w, set.Payload)
}

// Response documents the wallpaper envelope.
type Response struct {
	Success bool `json:"success" example:"true"`
	Data    DTO  `json:"data"`
}

// Register mounts the wallpaper route at the root and under /api.
func Register(mux *http.ServeMux, svc *wallpaperUC.Service) {
	for _, p := range pathutil.Patterns(http.MethodGet, "/bing") {
		mux.Handle(p, Handler{Svc: svc})
	}
}
