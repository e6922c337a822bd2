package database

import (
	"fmt"
	"quiz_backend/internal/config"
	"quiz_backend/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Models 需要自动迁移的全部表
var Models = []interface{}{
	&model.Subject{},
	&model.Quiz{},
	&model.Question{},
	&model.QuestionOption{},
	&model.QuizAttempt{},
	&model.UserAnswer{},
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMySQL, "":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case config.DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

func InitDB(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	if cfg.Driver == config.DriverSQLite {
		// sqlite 只允许单写，内存库在多连接下也不共享
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if cfg.SeedDefault {
		if err := SeedSubjects(db); err != nil {
			return nil, err
		}
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models...)
}

// DefaultSubjects 默认学科，仅在学科表为空时写入
var DefaultSubjects = []model.Subject{
	{Name: "DBMS", Description: "Database Management Systems", Color: "#000000"},
	{Name: "FEDF", Description: "Front-End Development Frameworks", Color: "#FF6B6B"},
	{Name: "OOP", Description: "Object-Oriented Programming", Color: "#4ECDC4"},
	{Name: "OS", Description: "Operating Systems", Color: "#45B7D1"},
}

func SeedSubjects(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Subject{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	subjects := make([]model.Subject, len(DefaultSubjects))
	copy(subjects, DefaultSubjects)
	return db.Create(&subjects).Error
}
