package repository

import (
	"courseflow_backend/internal/model"

	"gorm.io/gorm"
)

type NoteRepository struct {
	DB *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{DB: db}
}

func (r *NoteRepository) Create(note *model.Note) error {
	return r.DB.Create(note).Error
}

func (r *NoteRepository) FindByID(id string) (*model.Note, error) {
	var note model.Note
	err := r.DB.Where("id = ?", id).First(&note).Error
	return &note, err
}

func (r *NoteRepository) ListByUser(userID uint) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListByCourse(userID uint, courseID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("user_id = ? AND course_id = ?", userID, courseID).
		Order("created_at desc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) ListByLesson(userID uint, lessonID string) ([]model.Note, error) {
	var notes []model.Note
	err := r.DB.Where("user_id = ? AND lesson_id = ?", userID, lessonID).
		Order("timestamp asc").Find(&notes).Error
	return notes, err
}

func (r *NoteRepository) Update(note *model.Note) error {
	return r.DB.Save(note).Error
}

func (r *NoteRepository) Delete(id string) error {
	return r.DB.Where("id = ?", id).Delete(&model.Note{}).Error
}
