package controller

import (
	"courseflow_backend/internal/service"
	"courseflow_backend/internal/util"
	"courseflow_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
	LearningService *service.LearningService
}

func NewProgressController(progressService *service.ProgressService, learningService *service.LearningService) *ProgressController {
	return &ProgressController{
		ProgressService: progressService,
		LearningService: learningService,
	}
}

// Enroll godoc
// @Summary 报名课程
// @Description 幂等操作：已报名时返回现有进度记录
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.ProgressRecord}
// @Failure 500 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *ProgressController) Enroll(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	courseID := ctx.Param("id")
	record, err := c.ProgressService.Enroll(ctx.Request.Context(), user.UserID, courseID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	monitoring.EnrollmentCounter.WithLabelValues(courseID).Inc()
	util.Success(ctx, record)
}

// GetAllProgress godoc
// @Summary 全部课程进度
// @Description 返回当前用户所有进度记录，按报名先后排序
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.ProgressRecord}
// @Router /api/progress [get]
func (c *ProgressController) GetAllProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	records, err := c.ProgressService.GetAllProgress(ctx.Request.Context(), user.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, records)
}

// GetProgress godoc
// @Summary 单门课程进度
// @Description 未报名时返回 data 为 null，不会创建记录
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.ProgressRecord}
// @Router /api/courses/{id}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.ProgressService.GetProgress(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

type UpdateProgressRequest struct {
	LessonID string `json:"lessonId"`
	Progress int    `json:"progress"`
}

// UpdateProgress godoc
// @Summary 上报播放进度
// @Description 刷新最近访问时间；未报名用户自动补报名
// @Tags 进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param body body UpdateProgressRequest true "播放位置"
// @Success 200 {object} util.Response{data=model.ProgressRecord}
// @Router /api/courses/{id}/progress [put]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.ProgressService.UpdateProgress(ctx.Request.Context(), user.UserID, ctx.Param("id"), req.LessonID, req.Progress)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, record)
}

// CompleteLesson godoc
// @Summary 标记课时完成
// @Description 幂等操作：课时进入已完成集合，重复调用不产生重复项
// @Tags 进度
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} util.Response{data=model.ProgressRecord}
// @Failure 404 {object} util.Response
// @Failure 409 {object} util.Response "未报名该课程"
// @Router /api/courses/{id}/lessons/{lessonId}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	record, err := c.LearningService.CompleteLesson(ctx.Request.Context(), user.UserID, ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, record)
}
