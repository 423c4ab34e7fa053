package service

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/internal/util"
	"errors"

	"gorm.io/gorm"
)

// NoteService 课时笔记的增删改查，笔记归属于创建它的用户
type NoteService struct {
	Repo *repository.NoteRepository
}

func NewNoteService(repo *repository.NoteRepository) *NoteService {
	return &NoteService{Repo: repo}
}

type NoteRequest struct {
	CourseID  string `json:"courseId" binding:"required"`
	LessonID  string `json:"lessonId" binding:"required"`
	Timestamp int    `json:"timestamp"`
	Content   string `json:"content" binding:"required"`
}

func (s *NoteService) Create(userID uint, req NoteRequest) (*model.Note, error) {
	note := &model.Note{
		UserID:    userID,
		CourseID:  req.CourseID,
		LessonID:  req.LessonID,
		Timestamp: req.Timestamp,
		Content:   req.Content,
	}
	if err := s.Repo.Create(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) ListAll(userID uint) ([]model.Note, error) {
	return s.Repo.ListByUser(userID)
}

func (s *NoteService) ListByCourse(userID uint, courseID string) ([]model.Note, error) {
	return s.Repo.ListByCourse(userID, courseID)
}

func (s *NoteService) ListByLesson(userID uint, lessonID string) ([]model.Note, error) {
	return s.Repo.ListByLesson(userID, lessonID)
}

func (s *NoteService) Update(userID uint, id string, req NoteRequest) (*model.Note, error) {
	note, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	note.Timestamp = req.Timestamp
	note.Content = req.Content
	if err := s.Repo.Update(note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *NoteService) Delete(userID uint, id string) error {
	if _, err := s.findOwned(userID, id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}

func (s *NoteService) findOwned(userID uint, id string) (*model.Note, error) {
	note, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrNoteNotFound
	}
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, util.ErrNoteNotFound
	}
	return note, nil
}
