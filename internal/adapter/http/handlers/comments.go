package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/tonygradient/tony-board/internal/adapter/http/dto"
	"github.com/tonygradient/tony-board/internal/adapter/http/mapper"
	"github.com/tonygradient/tony-board/internal/adapter/http/middleware"
	"github.com/tonygradient/tony-board/internal/core/domain"
	"github.com/tonygradient/tony-board/internal/core/ports"
	"github.com/tonygradient/tony-board/pkg/apierrors"
)

type CommentHandler struct {
	commentService ports.CommentService
}

func NewCommentHandler(commentService ports.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), taskID)
	if err != nil {
		zap.L().Error("failed to list comments", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListComments, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToCommentItems(comments))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseTaskID(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang),
		)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), taskID, req.Author, req.Content)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyContent) || errors.Is(err, domain.ErrInvalidAuthor) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidCommentPayload, lang),
			)
			return
		}
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to create comment", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateComment, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToCommentItem(comment))
}
