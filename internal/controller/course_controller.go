package controller

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/service"
	"courseflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	Catalog         *repository.CatalogRepository
	LearningService *service.LearningService
}

func NewCourseController(catalog *repository.CatalogRepository, learningService *service.LearningService) *CourseController {
	return &CourseController{
		Catalog:         catalog,
		LearningService: learningService,
	}
}

// GetCourses godoc
// @Summary 课程列表
// @Description 获取课程目录全部课程
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	util.Success(ctx, c.Catalog.GetAll())
}

// GetCourse godoc
// @Summary 课程详情
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.Catalog.GetByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// GetSyllabus godoc
// @Summary 课程大纲与学习进度
// @Description 课程结构、总进度、各模块进度和下一个待学课时
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=service.Syllabus}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/syllabus [get]
func (c *CourseController) GetSyllabus(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	syllabus, err := c.LearningService.GetSyllabus(ctx.Request.Context(), user.UserID, ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, syllabus)
}

// Resume godoc
// @Summary 续播定位
// @Description 定位当前课时并刷新最近访问时间，lesson 参数缺省时从头开始
// @Tags 课程
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param lesson query string false "课时ID"
// @Success 200 {object} util.Response{data=service.ResumePoint}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/resume [get]
func (c *CourseController) Resume(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	point, err := c.LearningService.Resume(ctx.Request.Context(), user.UserID, ctx.Param("id"), ctx.Query("lesson"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, point)
}

// CreateCourse godoc
// @Summary 新建课程（管理员）
// @Tags 课程管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.Course true "课程定义"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	created, err := c.Catalog.Create(course)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, created)
}

// UpdateCourse godoc
// @Summary 更新课程（管理员）
// @Tags 课程管理
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param body body model.Course true "课程定义"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	updated, err := c.Catalog.Update(ctx.Param("id"), course)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, updated)
}

// DeleteCourse godoc
// @Summary 删除课程（管理员）
// @Tags 课程管理
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.Catalog.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "course deleted"})
}
