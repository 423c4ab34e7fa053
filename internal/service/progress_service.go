package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"context"
	"fmt"
	"time"
)

// ProgressService 进度引擎，管理每个用户每门课程的进度记录生命周期。
// 所有修改都以"整读-修改-整写"的方式经过 ProgressStore；
// 同一课程的并发调用需由调用方串行化，引擎内部不加锁。
type ProgressService struct {
	Store repository.ProgressStore

	// Now 测试可替换的时钟
	Now func() time.Time
}

func NewProgressService(store repository.ProgressStore) *ProgressService {
	return &ProgressService{
		Store: store,
		Now:   time.Now,
	}
}

// Enroll 幂等报名：已有记录时原样返回，不触碰 lastAccessed；
// 否则创建空进度记录并持久化
func (s *ProgressService) Enroll(ctx context.Context, userID uint, courseID string) (*model.ProgressRecord, error) {
	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := indexOfCourse(records, courseID); idx >= 0 {
		rec := records[idx]
		return &rec, nil
	}

	record := model.NewProgressRecord(courseID, s.Now())
	records = append(records, *record)
	if err := s.writeAll(ctx, userID, records); err != nil {
		return nil, err
	}
	return record, nil
}

// GetProgress 查询单门课程的进度，未报名返回 nil，无副作用
func (s *ProgressService) GetProgress(ctx context.Context, userID uint, courseID string) (*model.ProgressRecord, error) {
	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	if idx := indexOfCourse(records, courseID); idx >= 0 {
		rec := records[idx]
		return &rec, nil
	}
	return nil, nil
}

// GetAllProgress 返回该用户全部进度记录，顺序为报名先后
func (s *ProgressService) GetAllProgress(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	return s.readAll(ctx, userID)
}

// UpdateProgress 记录"最近访问"。lessonID 与课时内播放位置只用于
// 表示层断点续播，不进入进度记录本身。未报名时自动补报名后重试一次，
// 这是引擎中唯一的自愈路径。
func (s *ProgressService) UpdateProgress(ctx context.Context, userID uint, courseID string, lessonID string, progress int) (*model.ProgressRecord, error) {
	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfCourse(records, courseID)
	if idx < 0 {
		if _, err := s.Enroll(ctx, userID, courseID); err != nil {
			return nil, err
		}
		records, err = s.readAll(ctx, userID)
		if err != nil {
			return nil, err
		}
		idx = indexOfCourse(records, courseID)
		if idx < 0 {
			return nil, util.ErrNotEnrolled
		}
	}

	records[idx].LastAccessed = s.Now()
	if err := s.writeAll(ctx, userID, records); err != nil {
		return nil, err
	}
	rec := records[idx]
	return &rec, nil
}

// CompleteLesson 把课时加入已完成集合（幂等，无重复项）。
// 未报名直接报错，与 UpdateProgress 的自愈行为不同——这是沿用
// 原有行为的有意差异，由测试固定。
func (s *ProgressService) CompleteLesson(ctx context.Context, userID uint, courseID string, lessonID string) (*model.ProgressRecord, error) {
	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfCourse(records, courseID)
	if idx < 0 {
		return nil, util.ErrNotEnrolled
	}

	if !records[idx].HasCompleted(lessonID) {
		records[idx].CompletedLessons = append(records[idx].CompletedLessons, lessonID)
	}
	records[idx].LastAccessed = s.Now()

	if err := s.writeAll(ctx, userID, records); err != nil {
		return nil, err
	}
	rec := records[idx]
	return &rec, nil
}

// CompleteQuiz 记录课时测验成绩，重考覆盖旧成绩，不保留历史。
// 测验成绩与课时完成相互独立：这里不会把课时标记为已完成。
func (s *ProgressService) CompleteQuiz(ctx context.Context, userID uint, courseID string, lessonID string, score int) (*model.ProgressRecord, error) {
	if score < 0 || score > 100 {
		return nil, util.ErrScoreOutOfRange
	}

	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfCourse(records, courseID)
	if idx < 0 {
		return nil, util.ErrNotEnrolled
	}

	if records[idx].QuizScores == nil {
		records[idx].QuizScores = map[string]int{}
	}
	records[idx].QuizScores[lessonID] = score
	records[idx].LastAccessed = s.Now()

	if err := s.writeAll(ctx, userID, records); err != nil {
		return nil, err
	}
	rec := records[idx]
	return &rec, nil
}

// EarnCertificate 点亮证书标志，只会从 false 变 true。
// 引擎本身不校验课程是否学完，由 CertificateService 把关。
func (s *ProgressService) EarnCertificate(ctx context.Context, userID uint, courseID string) (*model.ProgressRecord, error) {
	records, err := s.readAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	idx := indexOfCourse(records, courseID)
	if idx < 0 {
		return nil, util.ErrNotEnrolled
	}

	records[idx].CertificateEarned = true
	records[idx].LastAccessed = s.Now()

	if err := s.writeAll(ctx, userID, records); err != nil {
		return nil, err
	}
	rec := records[idx]
	return &rec, nil
}

func (s *ProgressService) readAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	records, err := s.Store.ReadAll(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrPersistence, err)
	}
	return records, nil
}

func (s *ProgressService) writeAll(ctx context.Context, userID uint, records []model.ProgressRecord) error {
	if err := s.Store.WriteAll(ctx, userID, records); err != nil {
		return fmt.Errorf("%w: %v", util.ErrPersistence, err)
	}
	return nil
}

func indexOfCourse(records []model.ProgressRecord, courseID string) int {
	for i := range records {
		if records[i].CourseID == courseID {
			return i
		}
	}
	return -1
}
