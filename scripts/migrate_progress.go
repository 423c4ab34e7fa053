// 进度存储后端迁移脚本
//
// 切换 progress.store 配置前手动执行一次，把已有进度记录从旧后端
// 搬到新后端。按 users 表逐个用户整读整写，可重复执行（目标端覆盖）。
//
// 用法: go run scripts/migrate_progress.go -from file -to mysql

package main

import (
	"courseflow_backend/internal/config"
	"courseflow_backend/internal/model"
	"courseflow_backend/internal/repository"
	"courseflow_backend/pkg/database"
	"courseflow_backend/pkg/logger"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

func main() {
	from := flag.String("from", "file", "源存储后端: memory | file | redis | mysql")
	to := flag.String("to", "mysql", "目标存储后端: memory | file | redis | mysql")
	flag.Parse()

	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	src, err := buildStore(*from, &cfg, db)
	if err != nil {
		log.Fatalf("源存储初始化失败: %v", err)
	}
	dst, err := buildStore(*to, &cfg, db)
	if err != nil {
		log.Fatalf("目标存储初始化失败: %v", err)
	}

	var users []model.User
	if err := db.Select("id").Find(&users).Error; err != nil {
		log.Fatalf("读取用户列表失败: %v", err)
	}

	ctx := context.Background()
	migrated := 0
	for _, user := range users {
		records, err := src.ReadAll(ctx, user.ID)
		if err != nil {
			log.Fatalf("读取用户 %d 的进度失败: %v", user.ID, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := dst.WriteAll(ctx, user.ID, records); err != nil {
			log.Fatalf("写入用户 %d 的进度失败: %v", user.ID, err)
		}
		migrated++
	}

	log.Printf("迁移完成: %d 个用户的进度已从 %s 迁移到 %s", migrated, *from, *to)
}

func buildStore(kind string, cfg *config.Config, db *gorm.DB) (repository.ProgressStore, error) {
	switch kind {
	case "memory":
		return repository.NewMemoryProgressStore(), nil
	case "file":
		return repository.NewFileProgressStore(cfg.Progress.FilePath)
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisProgressStore(rdb), nil
	case "mysql":
		return repository.NewGormProgressStore(db), nil
	default:
		return nil, fmt.Errorf("unknown progress store %q", kind)
	}
}
