package news

import (
	"errors"
	"net/http"

	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/respond"
	"newsboard/internal/observability/logging"
	newsUC "newsboard/internal/usecase/news"
)

// Detail endpoint messages.
const (
	NotFoundMessage     = "新闻不存在"
	DetailFailedMessage = "获取新闻详情失败"
)

// GetHandler serves GET /news/{id}.
type GetHandler struct {
	Svc *newsUC.Service
}

// ServeHTTP 新闻详情
// @Summary      新闻详情
// @Tags         news
// @Produce      json
// @Param        id   path      string  true  "新闻 ID"
// @Success      200 {object} DetailResponse
// @Failure      404 {object} respond.Envelope "新闻不存在"
// @Failure      500 {object} respond.Envelope "获取新闻详情失败"
// @Router       /news/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Fail(w, http.StatusNotFound, NotFoundMessage)
		return
	}

	detail, err := h.Svc.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) || errors.Is(err, newsUC.ErrInvalidNewsID) {
			respond.Fail(w, http.StatusNotFound, NotFoundMessage)
			return
		}
		respond.SafeError(w, logger, respond.NewAppError(http.StatusInternalServerError, DetailFailedMessage, err))
		return
	}

	respond.OK(w, toDetailDTO(detail))
}

// DetailResponse documents the detail envelope.
type DetailResponse struct {
	Success bool      `json:"success" example:"true"`
	Data    DetailDTO `json:"data"`
}
