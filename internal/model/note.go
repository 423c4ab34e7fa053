package model

// Note 课时笔记，Timestamp 为视频内的秒数定位
// swagger:model Note
type Note struct {
	UUIDBase
	UserID    uint   `gorm:"index;type:bigint unsigned" json:"userId"`
	CourseID  string `gorm:"size:64;index" json:"courseId"`
	LessonID  string `gorm:"size:64;index" json:"lessonId"`
	Timestamp int    `gorm:"default:0" json:"timestamp"`
	Content   string `gorm:"type:text;not null" json:"content"`
}

func (Note) TableName() string {
	return "notes"
}
