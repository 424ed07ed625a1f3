package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/core/ports"
	"github.com/tonygradient/tony-board/pkg/apierrors"
)

type SeenHandler struct {
	seenService   ports.SeenService
	defaultUserID string
}

func NewSeenHandler(seenService ports.SeenService, defaultUserID string) *SeenHandler {
	return &SeenHandler{seenService: seenService, defaultUserID: defaultUserID}
}

// MarkSeen always acks: the checkpoint write is advisory. The applied flag
// tells clients whether it actually landed.
func (h *SeenHandler) MarkSeen(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		userID = h.defaultUserID
	}

	applied := h.seenService.MarkSeen(c.Request.Context(), taskID, userID)
	c.JSON(http.StatusOK, dto.MarkSeenResponse{Success: true, Applied: applied})
}

func (h *SeenHandler) UnreadCount(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID := c.Query("userId")
	if userID == "" {
		userID = h.defaultUserID
	}

	count, err := h.seenService.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to count unread tasks", zap.String("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUnreadCount, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}
