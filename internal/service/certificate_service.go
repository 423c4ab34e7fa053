package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"context"
	"time"
)

// CertificateService 证书的颁发与查询。
// 进度引擎的 EarnCertificate 本身不做校验，完成度门槛在这一层把关。
type CertificateService struct {
	Catalog   *repository.CatalogRepository
	Progress  *ProgressService
	Sequencer *LessonSequencer
}

func NewCertificateService(
	catalog *repository.CatalogRepository,
	progress *ProgressService,
	sequencer *LessonSequencer,
) *CertificateService {
	return &CertificateService{
		Catalog:   catalog,
		Progress:  progress,
		Sequencer: sequencer,
	}
}

type Certificate struct {
	CourseID    string    `json:"courseId"`
	CourseTitle string    `json:"courseTitle"`
	Instructor  string    `json:"instructor"`
	Category    string    `json:"category"`
	EarnedAt    time.Time `json:"earnedAt"` // 取自进度记录的最近访问时间
}

// List 已获得证书的课程清单
func (s *CertificateService) List(ctx context.Context, userID uint) ([]Certificate, error) {
	records, err := s.Progress.GetAllProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	certs := []Certificate{}
	for _, rec := range records {
		if !rec.CertificateEarned {
			continue
		}
		course, err := s.Catalog.GetByID(rec.CourseID)
		if err != nil {
			// 课程可能已被下架，证书仍保留，只是缺少目录信息
			certs = append(certs, Certificate{CourseID: rec.CourseID, EarnedAt: rec.LastAccessed})
			continue
		}
		certs = append(certs, Certificate{
			CourseID:    course.ID,
			CourseTitle: course.Title,
			Instructor:  course.Instructor,
			Category:    course.Category,
			EarnedAt:    rec.LastAccessed,
		})
	}
	return certs, nil
}

// Request 申领证书：校验全部课时完成后才点亮证书标志，
// 未学完返回 ErrCourseIncomplete。已有证书时幂等返回。
func (s *CertificateService) Request(ctx context.Context, userID uint, courseID string) (*model.ProgressRecord, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	record, err := s.Progress.GetProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, util.ErrNotEnrolled
	}

	if record.CertificateEarned {
		return record, nil
	}

	if s.Sequencer.PercentComplete(course, record) < 100 {
		return nil, util.ErrCourseIncomplete
	}

	return s.Progress.EarnCertificate(ctx, userID, courseID)
}
