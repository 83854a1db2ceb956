package database

import (
	"fmt"
	"log"
	"naira_backend/internal/config"
	"naira_backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	Seed(db)

	return db, nil
}

// Migrate 迁移全部业务表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Task{},
		&model.Schedule{},
		&model.StudySession{},
		&model.Conversation{},
		&model.Message{},
		&model.LMSIntegration{},
		&model.Motivation{},
	)
}

// Seed 初始化默认数据（空表时插入激励短句）
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&model.Motivation{}).Count(&count)
	if count == 0 {
		defaultMotivations := []string{
			"Every study session brings you closer to your goals!",
			"Success is the sum of small efforts repeated day in and day out.",
			"Your future is created by what you do today, not tomorrow.",
			"The expert in anything was once a beginner. Keep going!",
			"Don't watch the clock; do what it does. Keep going!",
		}
		for i, content := range defaultMotivations {
			motivation := &model.Motivation{
				Content:         content,
				IsEnabled:       true,
				IsCurrentlyUsed: i == 0,
			}
			db.Create(motivation)
		}
	}
}
