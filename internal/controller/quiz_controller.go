package controller

import (
	"courseflow_backend/internal/service"
	"courseflow_backend/internal/util"
	"courseflow_backend/pkg/monitoring"
	"strconv"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	LearningService *service.LearningService
}

func NewQuizController(learningService *service.LearningService) *QuizController {
	return &QuizController{LearningService: learningService}
}

// GetQuiz godoc
// @Summary 获取课时测验
// @Description 下发的题目不包含正确答案
// @Tags 测验
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} util.Response{data=service.StudentQuiz}
// @Failure 400 {object} util.Response "课时没有测验"
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId}/quiz [get]
func (c *QuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.LearningService.GetQuiz(ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, quiz)
}

type SubmitQuizRequest struct {
	// Answers 题号到选项下标的映射，缺考的题按答错计
	Answers map[int]int `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary 提交测验答卷
// @Description 服务端判分，成绩写入进度并覆盖该课时的旧成绩
// @Tags 测验
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "课程ID"
// @Param lessonId path string true "课时ID"
// @Param body body SubmitQuizRequest true "答卷"
// @Success 200 {object} util.Response{data=service.QuizResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "未报名该课程"
// @Router /api/courses/{id}/lessons/{lessonId}/quiz [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courseID := ctx.Param("id")
	result, err := c.LearningService.SubmitQuiz(ctx.Request.Context(), user.UserID, courseID, ctx.Param("lessonId"), req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	monitoring.QuizSubmissionCounter.WithLabelValues(courseID, strconv.FormatBool(result.Passed)).Inc()
	util.Success(ctx, result)
}
