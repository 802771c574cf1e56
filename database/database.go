package database

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/models"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

//go:embed seed/trivia.json
var seedJSON []byte

type seedQuestion struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type seedFile struct {
	Categories []string       `json:"categories"`
	Questions  []seedQuestion `json:"questions"`
}

// Open connects to postgres or sqlite depending on driver. The sqlite
// driver is pure Go, so "file::memory:" works without cgo.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres", "":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		DisableNestedTransaction:                 true,
		TranslateError:                           true,
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}

func ConnectDB(settings config.Settings) {
	var err error
	DB, err = Open(settings.DatabaseDriver, settings.DatabaseURL)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	log.Printf("✅ Database connected successfully (%s)", settings.DatabaseDriver)
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Category{}, &models.Question{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Println("✅ Database migration successful")
	return nil
}

// Seed inserts the default categories and the sample question bank. Each
// table is only seeded while it is empty.
func Seed(db *gorm.DB) error {
	var data seedFile
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count categories: %w", err)
	}
	if count == 0 {
		categories := make([]models.Category, len(data.Categories))
		for i, name := range data.Categories {
			categories[i] = models.Category{Type: name}
		}
		if err := db.Create(&categories).Error; err != nil {
			return fmt.Errorf("seed categories: %w", err)
		}
		log.Printf("✅ Seeded %d categories", len(categories))
	}

	if err := db.Model(&models.Question{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}
	if count > 0 {
		log.Println("Questions already present, skipping question seed.")
		return nil
	}

	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	ids := make(map[string]int, len(categories))
	for _, c := range categories {
		ids[c.Type] = c.ID
	}

	questions := make([]models.Question, 0, len(data.Questions))
	for _, q := range data.Questions {
		categoryID, ok := ids[q.Category]
		if !ok {
			return fmt.Errorf("seed question %q references unknown category %q", q.Question, q.Category)
		}
		questions = append(questions, models.Question{
			Question:   q.Question,
			Answer:     q.Answer,
			Category:   categoryID,
			Difficulty: q.Difficulty,
		})
	}
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}

	log.Printf("✅ Seeded %d questions", len(questions))
	return nil
}
