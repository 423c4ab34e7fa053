package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"context"
	"errors"
	"testing"
)

func newTestLearningService(courses ...model.Course) (*LearningService, *ProgressService) {
	catalog := repository.NewCatalogRepositoryFromCourses(courses)
	progress := newTestProgressService()
	learning := NewLearningService(catalog, progress, NewLessonSequencer(), NewQuizGrader())
	return learning, progress
}

func quizCourse() model.Course {
	return model.Course{
		ID:    "course-1",
		Title: "Test Course",
		Modules: []model.CourseModule{
			{
				ID: "m1",
				Lessons: []model.Lesson{
					{ID: "l1", Title: "Lesson 1"},
					{
						ID:    "l2",
						Title: "Lesson 2",
						Quiz: &model.Quiz{
							PassingScore: 70,
							Questions: []model.Question{
								{Question: "q1", Options: []string{"a", "b"}, CorrectAnswer: 1},
								{Question: "q2", Options: []string{"a", "b"}, CorrectAnswer: 0},
							},
						},
					},
				},
			},
		},
	}
}

func TestGetSyllabus(t *testing.T) {
	learning, progress := newTestLearningService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")
	progress.CompleteLesson(ctx, 1, "course-1", "l1")

	syllabus, err := learning.GetSyllabus(ctx, 1, "course-1")
	if err != nil {
		t.Fatalf("GetSyllabus returned error: %v", err)
	}
	if syllabus.PercentComplete != 50 {
		t.Fatalf("expected 50%%, got %d", syllabus.PercentComplete)
	}
	if len(syllabus.Modules) != 1 || syllabus.Modules[0].Percent != 50 {
		t.Fatalf("unexpected module status: %+v", syllabus.Modules)
	}
	if syllabus.NextLesson == nil || syllabus.NextLesson.ID != "l2" {
		t.Fatalf("expected next lesson l2, got %+v", syllabus.NextLesson)
	}
}

func TestGetSyllabusUnknownCourse(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	if _, err := learning.GetSyllabus(context.Background(), 1, "missing"); !errors.Is(err, util.ErrCourseNotFound) {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestGetSyllabusWithoutEnrollment(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	syllabus, err := learning.GetSyllabus(context.Background(), 1, "course-1")
	if err != nil {
		t.Fatalf("GetSyllabus returned error: %v", err)
	}
	if syllabus.Record != nil {
		t.Fatalf("unenrolled syllabus should carry no record, got %+v", syllabus.Record)
	}
	if syllabus.PercentComplete != 0 {
		t.Fatalf("expected 0%%, got %d", syllabus.PercentComplete)
	}
}

func TestResumeAutoEnrolls(t *testing.T) {
	learning, progress := newTestLearningService(quizCourse())
	ctx := context.Background()

	point, err := learning.Resume(ctx, 1, "course-1", "")
	if err != nil {
		t.Fatalf("Resume returned error: %v", err)
	}
	if point.Lesson.ID != "l1" {
		t.Fatalf("expected first lesson, got %s", point.Lesson.ID)
	}
	if point.NextLesson == nil || point.NextLesson.ID != "l2" {
		t.Fatalf("expected next lesson l2, got %+v", point.NextLesson)
	}

	record, err := progress.GetProgress(ctx, 1, "course-1")
	if err != nil {
		t.Fatalf("GetProgress returned error: %v", err)
	}
	if record == nil {
		t.Fatal("resume should have auto-enrolled the user")
	}
}

func TestResumeUnknownLesson(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	if _, err := learning.Resume(context.Background(), 1, "course-1", "missing"); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}

func TestGetQuizStripsCorrectAnswers(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	quiz, err := learning.GetQuiz("course-1", "l2")
	if err != nil {
		t.Fatalf("GetQuiz returned error: %v", err)
	}
	if quiz.PassingScore != 70 {
		t.Fatalf("expected passing score 70, got %d", quiz.PassingScore)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(quiz.Questions))
	}
	for _, q := range quiz.Questions {
		if len(q.Options) == 0 || q.Question == "" {
			t.Fatalf("question payload incomplete: %+v", q)
		}
	}
}

func TestGetQuizForLessonWithoutQuiz(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	if _, err := learning.GetQuiz("course-1", "l1"); !errors.Is(err, util.ErrQuizNotFound) {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestSubmitQuizGradesAndRecords(t *testing.T) {
	learning, progress := newTestLearningService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")

	result, err := learning.SubmitQuiz(ctx, 1, "course-1", "l2", map[int]int{0: 1, 1: 0})
	if err != nil {
		t.Fatalf("SubmitQuiz returned error: %v", err)
	}
	if result.Score != 100 || !result.Passed {
		t.Fatalf("expected a passing 100, got %+v", result)
	}
	if result.Record.QuizScores["l2"] != 100 {
		t.Fatalf("score not recorded: %+v", result.Record.QuizScores)
	}

	// 重考更差的成绩也要覆盖
	result, err = learning.SubmitQuiz(ctx, 1, "course-1", "l2", map[int]int{0: 0, 1: 1})
	if err != nil {
		t.Fatalf("SubmitQuiz returned error: %v", err)
	}
	if result.Score != 0 || result.Passed {
		t.Fatalf("expected a failing 0, got %+v", result)
	}
	if result.Record.QuizScores["l2"] != 0 {
		t.Fatalf("retake must overwrite score: %+v", result.Record.QuizScores)
	}
}

func TestSubmitQuizRequiresEnrollment(t *testing.T) {
	learning, _ := newTestLearningService(quizCourse())

	if _, err := learning.SubmitQuiz(context.Background(), 1, "course-1", "l2", map[int]int{}); !errors.Is(err, util.ErrNotEnrolled) {
		t.Fatalf("expected ErrNotEnrolled, got %v", err)
	}
}

func TestCompleteLessonValidatesCatalog(t *testing.T) {
	learning, progress := newTestLearningService(quizCourse())
	ctx := context.Background()

	progress.Enroll(ctx, 1, "course-1")

	if _, err := learning.CompleteLesson(ctx, 1, "course-1", "ghost"); !errors.Is(err, util.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}

	record, err := learning.CompleteLesson(ctx, 1, "course-1", "l1")
	if err != nil {
		t.Fatalf("CompleteLesson returned error: %v", err)
	}
	if !record.HasCompleted("l1") {
		t.Fatalf("lesson not recorded: %+v", record)
	}
}
