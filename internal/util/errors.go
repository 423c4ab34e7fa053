package util

import "errors"

var (
	ErrUserNotFound    = errors.New("用户不存在")
	ErrEmailRegistered = errors.New("该邮箱已被注册")

	ErrCourseNotFound   = errors.New("course not found")
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrQuizNotFound     = errors.New("lesson has no quiz")
	ErrNotEnrolled      = errors.New("progress not found, enroll first")
	ErrInvalidQuiz      = errors.New("quiz has no questions")
	ErrScoreOutOfRange  = errors.New("quiz score must be between 0 and 100")
	ErrCourseIncomplete = errors.New("course is not fully completed")
	ErrNoteNotFound     = errors.New("note not found")

	// ErrPersistence 进度存储读写失败的统一包装，调用方用 errors.Is 判断
	ErrPersistence = errors.New("progress store failure")
)
