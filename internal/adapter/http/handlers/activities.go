package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/adapter/http/mapper"
	"github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
	"github.com/tonygradient/tony-board/pkg/apierrors"
)

type ActivityHandler struct {
	activityService ports.ActivityService
}

func NewActivityHandler(activityService ports.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	lang := middleware.GetLang(c)

	filters := domain.ActivityFilters{
		Action:     c.Query("action"),
		EntityType: c.Query("entity_type"),
		EntityID:   c.Query("entity_id"),
	}

	var parseErr error
	if filters.StartDate, parseErr = parseDateParam(c.Query("start_date")); parseErr != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityQuery, lang),
		)
		return
	}
	if filters.EndDate, parseErr = parseDateParam(c.Query("end_date")); parseErr != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityQuery, lang),
		)
		return
	}
	if filters.Limit, parseErr = parseIntParam(c.Query("limit")); parseErr != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityQuery, lang),
		)
		return
	}
	if filters.Offset, parseErr = parseIntParam(c.Query("offset")); parseErr != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivityQuery, lang),
		)
		return
	}

	activities, err := h.activityService.Query(c.Request.Context(), filters)
	if err != nil {
		zap.L().Error("failed to list activities", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListActivities, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityItems(activities))
}

// RecordActivity lets external agents append to the audit trail directly.
// The session cookie (or a per-request id) fills session_id when the payload
// carries none.
func (h *ActivityHandler) RecordActivity(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RecordActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivity, lang),
		)
		return
	}

	input := domain.ActivityInput{
		Action:     req.Action,
		TokensUsed: req.TokensUsed,
		SessionID:  middleware.GetSessionID(c),
	}
	if req.EntityType != nil {
		input.EntityType = *req.EntityType
	}
	if req.EntityID != nil {
		input.EntityID = *req.EntityID
	}
	if req.SessionID != nil {
		input.SessionID = *req.SessionID
	}
	if len(req.Details) > 0 {
		input.Details = req.Details
	}

	activity, err := h.activityService.Record(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyAction) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidActivity, lang),
			)
			return
		}

		zap.L().Error("failed to record activity", zap.String("action", req.Action), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRecordActivity, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToActivityItem(activity))
}

func (h *ActivityHandler) ActivityStats(c *gin.Context) {
	lang := middleware.GetLang(c)

	stats, err := h.activityService.Stats(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to compute activity stats", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailActivityStats, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToActivityStatsResponse(stats))
}

func parseDateParam(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if parsed, err := time.Parse(dateLayout, value); err == nil {
		return &parsed, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseIntParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, errors.New("invalid numeric parameter")
	}
	return parsed, nil
}
