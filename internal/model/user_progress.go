package model

import (
	"encoding/json"
	"time"
)

// UserProgress MySQL 进度存储的行结构，每个 (用户, 课程) 一行，
// 集合与成绩以 JSON 列存储，与 ProgressRecord 互转在仓储层完成
type UserProgress struct {
	BaseModel
	UserID            uint            `gorm:"uniqueIndex:idx_user_course;type:bigint unsigned" json:"userId"`
	CourseID          string          `gorm:"uniqueIndex:idx_user_course;size:64" json:"courseId"`
	CompletedLessons  json.RawMessage `gorm:"type:json" json:"completedLessons"`
	QuizScores        json.RawMessage `gorm:"type:json" json:"quizScores"`
	LastAccessed      time.Time       `json:"lastAccessed"`
	CertificateEarned bool            `gorm:"default:false" json:"certificateEarned"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
