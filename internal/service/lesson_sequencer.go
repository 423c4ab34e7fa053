package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/util"
	"math"
)

// LessonSequencer 基于 (课程, 进度记录) 的纯派生计算，不做任何修改和存储访问。
// 课时顺序以目录中模块与课时的声明顺序为准。
type LessonSequencer struct{}

func NewLessonSequencer() *LessonSequencer {
	return &LessonSequencer{}
}

// PercentComplete 整门课程的完成百分比，四舍五入取整。
// 只统计目录里实际存在的课时，进度记录中多余的课时 ID 不计入。
// 没有课时的课程返回 0。
func (s *LessonSequencer) PercentComplete(course *model.Course, record *model.ProgressRecord) int {
	total := course.LessonCount()
	if total == 0 {
		return 0
	}

	completed := 0
	for _, m := range course.Modules {
		for _, l := range m.Lessons {
			if record != nil && record.HasCompleted(l.ID) {
				completed++
			}
		}
	}

	return int(math.Round(100 * float64(completed) / float64(total)))
}

// ModuleProgress 单个模块内的完成百分比，算法同上
func (s *LessonSequencer) ModuleProgress(module *model.CourseModule, record *model.ProgressRecord) int {
	total := len(module.Lessons)
	if total == 0 {
		return 0
	}

	completed := 0
	for _, l := range module.Lessons {
		if record != nil && record.HasCompleted(l.ID) {
			completed++
		}
	}

	return int(math.Round(100 * float64(completed) / float64(total)))
}

// NextIncompleteLesson 按声明顺序找第一个未完成的课时，
// 全部完成（或课程没有课时）时返回 nil
func (s *LessonSequencer) NextIncompleteLesson(course *model.Course, record *model.ProgressRecord) *model.Lesson {
	for _, m := range course.Modules {
		for i := range m.Lessons {
			if record == nil || !record.HasCompleted(m.Lessons[i].ID) {
				l := m.Lessons[i]
				return &l
			}
		}
	}
	return nil
}

// ResolveLesson 按 ID 定位课时；ID 为空时返回课程的第一个课时。
// 课程没有课时或 ID 不存在时返回 ErrLessonNotFound。
func (s *LessonSequencer) ResolveLesson(course *model.Course, lessonID string) (*model.Lesson, error) {
	for _, m := range course.Modules {
		for i := range m.Lessons {
			if lessonID == "" || m.Lessons[i].ID == lessonID {
				l := m.Lessons[i]
				return &l, nil
			}
		}
	}
	return nil, util.ErrLessonNotFound
}

// NextLessonAfter 展开顺序中紧随其后的课时；当前课时是最后一个
// 或 ID 不存在时返回 nil，表示课程学完
func (s *LessonSequencer) NextLessonAfter(course *model.Course, currentLessonID string) *model.Lesson {
	lessons := course.Lessons()
	for i := range lessons {
		if lessons[i].ID == currentLessonID {
			if i+1 < len(lessons) {
				l := lessons[i+1]
				return &l
			}
			return nil
		}
	}
	return nil
}
