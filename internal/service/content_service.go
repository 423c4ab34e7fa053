package service

import (
	"courseflow_backend/internal/util"
	"courseflow_backend/pkg/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ContentService 课时视频资产的上传与元数据提取。
// 上传得到的 videoUrl 和 duration 填进课程目录里的课时字段。
type ContentService struct {
	Storage *StorageService
}

func NewContentService(storage *StorageService) *ContentService {
	return &ContentService{Storage: storage}
}

// LessonAsset 上传后的课时素材信息
type LessonAsset struct {
	VideoURL  string `json:"videoUrl"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  int    `json:"duration"` // 秒
	Format    string `json:"format"`
	Size      int64  `json:"size"`
}

// UploadLessonVideo 保存上传的课时视频：先落到临时文件探测时长，
// 再交给存储后端，同时抓一帧作缩略图
func (s *ContentService) UploadLessonVideo(ctx context.Context, file *multipart.FileHeader) (*LessonAsset, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedVideoExt(ext) {
		return nil, errors.New("unsupported video format: " + ext)
	}

	tmp, err := os.CreateTemp("", "lesson-upload-*"+ext)
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if err := saveMultipart(tmp, file); err != nil {
		tmp.Close()
		return nil, err
	}
	tmp.Close()

	info, err := util.ProbeVideo(tmpPath)
	if err != nil {
		return nil, err
	}

	objectName := fmt.Sprintf("lessons/%s/%d%s", time.Now().Format(util.DateFormat), time.Now().UnixNano(), ext)
	videoURL, err := s.Storage.Provider.UploadFile(ctx, objectName, tmpPath, util.MimeVideo+strings.TrimPrefix(ext, "."))
	if err != nil {
		return nil, err
	}

	thumbnail := ""
	thumbPath := tmpPath + ".jpg"
	if err := util.GenerateThumbnail(tmpPath, thumbPath, "00:00:01"); err == nil {
		defer os.Remove(thumbPath)
		thumbName := strings.TrimSuffix(objectName, ext) + ".jpg"
		if url, err := s.Storage.Provider.UploadFile(ctx, thumbName, thumbPath, "image/jpeg"); err == nil {
			thumbnail = url
		}
	} else {
		logger.Log.Warn("thumbnail generation failed", zap.Error(err))
	}

	return &LessonAsset{
		VideoURL:  videoURL,
		Thumbnail: thumbnail,
		Duration:  int(info.Duration),
		Format:    info.Format,
		Size:      info.Size,
	}, nil
}

func allowedVideoExt(ext string) bool {
	for _, allowed := range util.AllowedVideoExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

func saveMultipart(dst *os.File, file *multipart.FileHeader) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	// 按内容嗅探 MIME，扩展名可以伪造
	mimeType, err := util.ValidateMimeType(src, []string{util.MimeVideo, util.MimeOctetStream})
	if err != nil {
		return err
	}
	if !util.IsVideo(mimeType) && mimeType != util.MimeOctetStream {
		return errors.New("file content is not a video: " + mimeType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return err
	}

	_, err = io.Copy(dst, src)
	return err
}
