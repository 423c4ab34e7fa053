package controller

import (
	"courseflow_backend/internal/service"
	"courseflow_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// UploadVideo godoc
// @Summary 上传课时视频（讲师/管理员）
// @Description 视频落盘后探测时长并生成缩略图，返回的地址和时长填入课程目录
// @Tags 内容
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "视频文件"
// @Success 200 {object} util.Response{data=service.LessonAsset}
// @Failure 400 {object} util.Response "文件缺失或格式不支持"
// @Failure 500 {object} util.Response
// @Router /api/upload/video [post]
func (c *ContentController) UploadVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	asset, err := c.ContentService.UploadLessonVideo(ctx.Request.Context(), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, asset)
}
