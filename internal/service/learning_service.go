package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"context"
)

// LearningService 组合目录、进度引擎、排课器和判分器，
// 为学习页面提供大纲、续播定位和测验流程
type LearningService struct {
	Catalog   *repository.CatalogRepository
	Progress  *ProgressService
	Sequencer *LessonSequencer
	Grader    *QuizGrader
}

func NewLearningService(
	catalog *repository.CatalogRepository,
	progress *ProgressService,
	sequencer *LessonSequencer,
	grader *QuizGrader,
) *LearningService {
	return &LearningService{
		Catalog:   catalog,
		Progress:  progress,
		Sequencer: sequencer,
		Grader:    grader,
	}
}

type ModuleStatus struct {
	ModuleID string `json:"moduleId"`
	Title    string `json:"title"`
	Percent  int    `json:"percent"`
}

// Syllabus 课程大纲视图：总进度、各模块进度和下一个待学课时
type Syllabus struct {
	Course          *model.Course         `json:"course"`
	Record          *model.ProgressRecord `json:"record,omitempty"`
	PercentComplete int                   `json:"percentComplete"`
	Modules         []ModuleStatus        `json:"modules"`
	NextLesson      *model.Lesson         `json:"nextLesson,omitempty"`
}

func (s *LearningService) GetSyllabus(ctx context.Context, userID uint, courseID string) (*Syllabus, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	record, err := s.Progress.GetProgress(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	modules := make([]ModuleStatus, len(course.Modules))
	for i := range course.Modules {
		modules[i] = ModuleStatus{
			ModuleID: course.Modules[i].ID,
			Title:    course.Modules[i].Title,
			Percent:  s.Sequencer.ModuleProgress(&course.Modules[i], record),
		}
	}

	return &Syllabus{
		Course:          course,
		Record:          record,
		PercentComplete: s.Sequencer.PercentComplete(course, record),
		Modules:         modules,
		NextLesson:      s.Sequencer.NextIncompleteLesson(course, record),
	}, nil
}

// ResumePoint 学习页打开时的定位：当前课时与其后继
type ResumePoint struct {
	Lesson     *model.Lesson         `json:"lesson"`
	NextLesson *model.Lesson         `json:"nextLesson,omitempty"`
	Record     *model.ProgressRecord `json:"record"`
}

// Resume 定位课时并刷新最近访问时间。lessonID 为空表示从头开始。
// 走的是进度引擎的自愈路径，未报名用户会被自动补报名。
func (s *LearningService) Resume(ctx context.Context, userID uint, courseID string, lessonID string) (*ResumePoint, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.Sequencer.ResolveLesson(course, lessonID)
	if err != nil {
		return nil, err
	}

	record, err := s.Progress.UpdateProgress(ctx, userID, courseID, lesson.ID, 0)
	if err != nil {
		return nil, err
	}

	return &ResumePoint{
		Lesson:     lesson,
		NextLesson: s.Sequencer.NextLessonAfter(course, lesson.ID),
		Record:     record,
	}, nil
}

// StudentQuestion 下发给学生的题目，不携带正确答案
type StudentQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type StudentQuiz struct {
	LessonID     string            `json:"lessonId"`
	PassingScore int               `json:"passingScore"`
	Questions    []StudentQuestion `json:"questions"`
}

// GetQuiz 获取课时测验（剥离正确答案），课时没有测验时报 ErrQuizNotFound
func (s *LearningService) GetQuiz(courseID, lessonID string) (*StudentQuiz, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.Sequencer.ResolveLesson(course, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.Quiz == nil {
		return nil, util.ErrQuizNotFound
	}

	questions := make([]StudentQuestion, len(lesson.Quiz.Questions))
	for i, q := range lesson.Quiz.Questions {
		questions[i] = StudentQuestion{Question: q.Question, Options: q.Options}
	}

	return &StudentQuiz{
		LessonID:     lesson.ID,
		PassingScore: lesson.Quiz.PassingScore,
		Questions:    questions,
	}, nil
}

type QuizResult struct {
	Score  int                   `json:"score"`
	Passed bool                  `json:"passed"`
	Record *model.ProgressRecord `json:"record"`
}

// SubmitQuiz 服务端判分并把成绩写入进度（覆盖旧成绩）。
// 判分通过与否不影响课时完成状态，也不阻止重考。
func (s *LearningService) SubmitQuiz(ctx context.Context, userID uint, courseID string, lessonID string, answers map[int]int) (*QuizResult, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	lesson, err := s.Sequencer.ResolveLesson(course, lessonID)
	if err != nil {
		return nil, err
	}
	if lesson.Quiz == nil {
		return nil, util.ErrQuizNotFound
	}

	score, err := s.Grader.Grade(lesson.Quiz, answers)
	if err != nil {
		return nil, err
	}

	record, err := s.Progress.CompleteQuiz(ctx, userID, courseID, lesson.ID, score)
	if err != nil {
		return nil, err
	}

	return &QuizResult{
		Score:  score,
		Passed: s.Grader.Passed(lesson.Quiz, score),
		Record: record,
	}, nil
}

// CompleteLesson 课时视频达到完成阈值后由前端调用
func (s *LearningService) CompleteLesson(ctx context.Context, userID uint, courseID string, lessonID string) (*model.ProgressRecord, error) {
	course, err := s.Catalog.GetByID(courseID)
	if err != nil {
		return nil, err
	}

	// 只接受目录里真实存在的课时
	if _, err := s.Sequencer.ResolveLesson(course, lessonID); err != nil {
		return nil, err
	}

	return s.Progress.CompleteLesson(ctx, userID, courseID, lessonID)
}
