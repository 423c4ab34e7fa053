package repository

import (
	"courseflow_backend/internal/model"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileProgressStore 每个用户一份 JSON 文档，落在数据目录下。
// 对应原前端 localStorage 的 courseflow_user_progress 键。
type FileProgressStore struct {
	mu  sync.Mutex
	dir string
}

func NewFileProgressStore(dir string) (*FileProgressStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileProgressStore{dir: dir}, nil
}

func (s *FileProgressStore) path(userID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("user_progress_%d.json", userID))
}

func (s *FileProgressStore) ReadAll(ctx context.Context, userID uint) ([]model.ProgressRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return []model.ProgressRecord{}, nil
	}
	if err != nil {
		return nil, err
	}

	var records []model.ProgressRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *FileProgressStore) WriteAll(ctx context.Context, userID uint, records []model.ProgressRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	// 先写临时文件再改名，避免写入中断留下半截文件
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(userID))
}
