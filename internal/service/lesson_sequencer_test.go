package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/util"
	"errors"
	"testing"
)

func twoModuleCourse() *model.Course {
	return &model.Course{
		ID:    "course-1",
		Title: "Test Course",
		Modules: []model.CourseModule{
			{
				ID: "m1",
				Lessons: []model.Lesson{
					{ID: "l1", Title: "Lesson 1"},
					{ID: "l2", Title: "Lesson 2"},
				},
			},
			{
				ID: "m2",
				Lessons: []model.Lesson{
					{ID: "l3", Title: "Lesson 3"},
				},
			},
		},
	}
}

func recordWith(lessons ...string) *model.ProgressRecord {
	return &model.ProgressRecord{
		CourseID:         "course-1",
		CompletedLessons: lessons,
		QuizScores:       map[string]int{},
	}
}

func TestPercentComplete(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	if got := s.PercentComplete(course, nil); got != 0 {
		t.Fatalf("nil record: expected 0, got %d", got)
	}
	if got := s.PercentComplete(course, recordWith("l1")); got != 33 {
		t.Fatalf("1/3 complete: expected 33, got %d", got)
	}
	if got := s.PercentComplete(course, recordWith("l1", "l2", "l3")); got != 100 {
		t.Fatalf("all complete: expected 100, got %d", got)
	}
}

func TestPercentCompleteEmptyCourse(t *testing.T) {
	s := NewLessonSequencer()
	course := &model.Course{ID: "empty"}

	if got := s.PercentComplete(course, recordWith("l1")); got != 0 {
		t.Fatalf("course without lessons: expected 0, got %d", got)
	}
}

func TestPercentCompleteIgnoresUnknownLessons(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	// 记录里有目录中不存在的课时 ID，不应计入
	if got := s.PercentComplete(course, recordWith("l1", "ghost")); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
}

func TestModuleProgress(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	if got := s.ModuleProgress(&course.Modules[0], recordWith("l1")); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
	if got := s.ModuleProgress(&course.Modules[1], recordWith("l1")); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := s.ModuleProgress(&model.CourseModule{ID: "empty"}, recordWith()); got != 0 {
		t.Fatalf("empty module: expected 0, got %d", got)
	}
}

func TestNextIncompleteLesson(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	if got := s.NextIncompleteLesson(course, nil); got == nil || got.ID != "l1" {
		t.Fatalf("nil record: expected l1, got %+v", got)
	}
	if got := s.NextIncompleteLesson(course, recordWith("l1")); got == nil || got.ID != "l2" {
		t.Fatalf("expected l2, got %+v", got)
	}
	// 跳着学：l2 完成但 l1 没完成，仍然指向 l1
	if got := s.NextIncompleteLesson(course, recordWith("l2")); got == nil || got.ID != "l1" {
		t.Fatalf("expected l1, got %+v", got)
	}
	if got := s.NextIncompleteLesson(course, recordWith("l1", "l2", "l3")); got != nil {
		t.Fatalf("all complete: expected nil, got %+v", got)
	}
}

func TestResolveLesson(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	lesson, err := s.ResolveLesson(course, "l3")
	if err != nil {
		t.Fatalf("ResolveLesson returned error: %v", err)
	}
	if lesson.ID != "l3" {
		t.Fatalf("expected l3, got %s", lesson.ID)
	}

	// 空 ID 回退到第一个课时
	lesson, err = s.ResolveLesson(course, "")
	if err != nil {
		t.Fatalf("ResolveLesson returned error: %v", err)
	}
	if lesson.ID != "l1" {
		t.Fatalf("expected l1, got %s", lesson.ID)
	}

	if _, err := s.ResolveLesson(course, "missing"); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
	if _, err := s.ResolveLesson(&model.Course{ID: "empty"}, ""); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("empty course: expected ErrLessonNotFound, got %v", err)
	}
}

func TestNextLessonAfter(t *testing.T) {
	s := NewLessonSequencer()
	course := twoModuleCourse()

	// 跨模块边界：l2 的后继是下一个模块的 l3
	if got := s.NextLessonAfter(course, "l2"); got == nil || got.ID != "l3" {
		t.Fatalf("expected l3, got %+v", got)
	}
	if got := s.NextLessonAfter(course, "l3"); got != nil {
		t.Fatalf("last lesson: expected nil, got %+v", got)
	}
	if got := s.NextLessonAfter(course, "missing"); got != nil {
		t.Fatalf("unknown lesson: expected nil, got %+v", got)
	}
}
