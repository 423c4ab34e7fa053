package model

import "time"

// ProgressRecord 单个用户在单门课程上的学习进度
//
// CompletedLessons 只增不减；QuizScores 每课时仅保留最近一次成绩；
// CertificateEarned 只能由 false 变为 true。
// swagger:model ProgressRecord
type ProgressRecord struct {
	CourseID          string         `json:"courseId"`
	CompletedLessons  []string       `json:"completedLessons"`
	QuizScores        map[string]int `json:"quizScores"`
	LastAccessed      time.Time      `json:"lastAccessed"`
	CertificateEarned bool           `json:"certificateEarned"`
}

// NewProgressRecord 报名时创建的空进度记录
func NewProgressRecord(courseID string, now time.Time) *ProgressRecord {
	return &ProgressRecord{
		CourseID:          courseID,
		CompletedLessons:  []string{},
		QuizScores:        map[string]int{},
		LastAccessed:      now,
		CertificateEarned: false,
	}
}

// HasCompleted 课时是否已完成（集合语义）
func (p *ProgressRecord) HasCompleted(lessonID string) bool {
	for _, id := range p.CompletedLessons {
		if id == lessonID {
			return true
		}
	}
	return false
}
