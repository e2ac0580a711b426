package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
)

// UnavailableDetail is the client-facing reason while the artifacts are
// missing. The load error itself only goes to the log.
const UnavailableDetail = "the prediction model is not loaded"

// BlockedHandler answers every request while the artifacts are unavailable.
// The form is never rendered in this state.
type BlockedHandler struct {
	cause    error
	recorder Recorder
}

func NewBlockedHandler(cause error, recorder Recorder) *BlockedHandler {
	return &BlockedHandler{cause: cause, recorder: recorder}
}

func (h *BlockedHandler) Page(c *gin.Context) {
	logger.WarnCtx(c.Request.Context(), "serving startup error page: "+h.cause.Error())
	c.HTML(http.StatusServiceUnavailable, "blocked.tmpl", BlockedView{
		PageTitle: PageTitle,
		Message:   BlockedNotice,
	})
}

func (h *BlockedHandler) API(c *gin.Context) {
	h.recorder.IncPredictionErrors(reasonUnavailable)
	logger.WarnCtx(c.Request.Context(), "prediction refused: "+h.cause.Error())
	c.JSON(http.StatusServiceUnavailable, ErrorResponse{
		Error:   "model artifacts unavailable",
		Details: UnavailableDetail,
	})
}
