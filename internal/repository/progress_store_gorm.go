package repository

import (
	"courseflow_backend/internal/model"
	"context"
	"encoding/json"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProgressStore MySQL 实现，每个 (用户, 课程) 一行，
// 集合与成绩存 JSON 列。读取按报名先后排序，与其他实现保持一致。
type GormProgressStore struct {
	DB *gorm.DB
}

func NewGormProgressStore(db *gorm.DB) *GormProgressStore {
	return &GormProgressStore{DB: db}
}

func (s *GormProgressStore) ReadAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	var rows []model.UserProgress
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc, id asc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	records := make([]model.ProgressRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := rowToRecord(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (s *GormProgressStore) WriteAll(ctx context.Context, userID uint, records []model.ProgressRecord) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rec := range records {
			row, err := recordToRow(userID, rec)
			if err != nil {
				return err
			}
			err = tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"completed_lessons", "quiz_scores", "last_accessed", "certificate_earned",
				}),
			}).Create(row).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func rowToRecord(row model.UserProgress) (*model.ProgressRecord, error) {
	rec := &model.ProgressRecord{
		CourseID:          row.CourseID,
		CompletedLessons:  []string{},
		QuizScores:        map[string]int{},
		LastAccessed:      row.LastAccessed,
		CertificateEarned: row.CertificateEarned,
	}
	if len(row.CompletedLessons) > 0 {
		if err := json.Unmarshal(row.CompletedLessons, &rec.CompletedLessons); err != nil {
			return nil, err
		}
	}
	if len(row.QuizScores) > 0 {
		if err := json.Unmarshal(row.QuizScores, &rec.QuizScores); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

func recordToRow(userID uint, rec model.ProgressRecord) (*model.UserProgress, error) {
	lessons, err := json.Marshal(rec.CompletedLessons)
	if err != nil {
		return nil, err
	}
	scores, err := json.Marshal(rec.QuizScores)
	if err != nil {
		return nil, err
	}
	return &model.UserProgress{
		UserID:            userID,
		CourseID:          rec.CourseID,
		CompletedLessons:  lessons,
		QuizScores:        scores,
		LastAccessed:      rec.LastAccessed,
		CertificateEarned: rec.CertificateEarned,
	}, nil
}
