package repository

import (
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/util"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// CatalogRepository 课程目录，启动时从 JSON 文件加载到内存。
// 对核心进度逻辑只读，管理端的增删改仅作用于内存副本。
type CatalogRepository struct {
	mu      sync.RWMutex
	courses []model.Course
}

func NewCatalogRepository(path string) (*CatalogRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取课程目录失败: %w", err)
	}

	var courses []model.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return nil, fmt.Errorf("解析课程目录失败: %w", err)
	}

	return &CatalogRepository{courses: courses}, nil
}

// NewCatalogRepositoryFromCourses 测试用，直接以内存数据构建目录
func NewCatalogRepositoryFromCourses(courses []model.Course) *CatalogRepository {
	return &CatalogRepository{courses: courses}
}

func (r *CatalogRepository) GetAll() []model.Course {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Course, len(r.courses))
	copy(out, r.courses)
	return out
}

func (r *CatalogRepository) GetByID(id string) (*model.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, util.ErrCourseNotFound
}

func (r *CatalogRepository) Create(course model.Course) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if course.ID == "" {
		course.ID = fmt.Sprintf("course-%d", time.Now().UnixMilli())
	}
	for i := range r.courses {
		if r.courses[i].ID == course.ID {
			return nil, fmt.Errorf("course %s already exists", course.ID)
		}
	}

	r.courses = append(r.courses, course)
	return &course, nil
}

func (r *CatalogRepository) Update(id string, course model.Course) (*model.Course, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			course.ID = id
			r.courses[i] = course
			return &course, nil
		}
	}
	return nil, util.ErrCourseNotFound
}

func (r *CatalogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			return nil
		}
	}
	return util.ErrCourseNotFound
}
