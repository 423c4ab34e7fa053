package controller

import (
	"courseflow_backend/internal/service"
	"courseflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	NoteService *service.NoteService
}

func NewNoteController(noteService *service.NoteService) *NoteController {
	return &NoteController{NoteService: noteService}
}

// ListNotes godoc
// @Summary 笔记列表
// @Description 支持按课程或课时过滤，不传过滤条件返回全部
// @Tags 笔记
// @Produce json
// @Security BearerAuth
// @Param courseId query string false "课程ID"
// @Param lessonId query string false "课时ID"
// @Success 200 {object} util.Response{data=[]model.Note}
// @Router /api/notes [get]
func (c *NoteController) ListNotes(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if lessonID := ctx.Query("lessonId"); lessonID != "" {
		result, err := c.NoteService.ListByLesson(user.UserID, lessonID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, result)
		return
	}

	if courseID := ctx.Query("courseId"); courseID != "" {
		result, err := c.NoteService.ListByCourse(user.UserID, courseID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, result)
		return
	}

	result, err := c.NoteService.ListAll(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// CreateNote godoc
// @Summary 新建笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.NoteRequest true "笔记内容"
// @Success 201 {object} util.Response{data=model.Note}
// @Failure 400 {object} util.Response
// @Router /api/notes [post]
func (c *NoteController) CreateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Create(user.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

// UpdateNote godoc
// @Summary 更新笔记
// @Description 只能修改自己的笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Param body body service.NoteRequest true "笔记内容"
// @Success 200 {object} util.Response{data=model.Note}
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [put]
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.NoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.Update(user.UserID, ctx.Param("id"), req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, note)
}

// DeleteNote godoc
// @Summary 删除笔记
// @Tags 笔记
// @Produce json
// @Security BearerAuth
// @Param id path string true "笔记ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.NoteService.Delete(user.UserID, ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "note deleted"})
}
