package controller

import (
	"courseflow_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondServiceError 把服务层的哨兵错误映射为 HTTP 状态码
func respondServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound),
		errors.Is(err, util.ErrLessonNotFound),
		errors.Is(err, util.ErrNoteNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrQuizNotFound),
		errors.Is(err, util.ErrInvalidQuiz),
		errors.Is(err, util.ErrScoreOutOfRange):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrNotEnrolled),
		errors.Is(err, util.ErrCourseIncomplete):
		util.Error(ctx, http.StatusConflict, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
