package repository

import (
	"courseflow_backend/internal/model"
	"context"
	"sync"
)

// ProgressStore 进度持久化抽象。引擎把每个用户的进度当作一个整体集合，
// 以"整读-修改-整写"的方式更新，存储层不做局部更新。
// 实现有 memory / file / redis / mysql 四种，由配置选择。
type ProgressStore interface {
	ReadAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error)
	WriteAll(ctx context.Context, userID uint, records []model.ProgressRecord) error
}

// MemoryProgressStore 内存实现，开发与测试用
type MemoryProgressStore struct {
	mu   sync.RWMutex
	data map[uint][]model.ProgressRecord
}

func NewMemoryProgressStore() *MemoryProgressStore {
	return &MemoryProgressStore{data: make(map[uint][]model.ProgressRecord)}
}

func (s *MemoryProgressStore) ReadAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.data[userID]), nil
}

func (s *MemoryProgressStore) WriteAll(ctx context.Context, userID uint, records []model.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[userID] = cloneRecords(records)
	return nil
}

// cloneRecords 深拷贝，避免调用方与存储共享切片和映射
func cloneRecords(records []model.ProgressRecord) []model.ProgressRecord {
	out := make([]model.ProgressRecord, len(records))
	for i, r := range records {
		out[i] = r
		out[i].CompletedLessons = append([]string{}, r.CompletedLessons...)
		out[i].QuizScores = make(map[string]int, len(r.QuizScores))
		for k, v := range r.QuizScores {
			out[i].QuizScores[k] = v
		}
	}
	return out
}
