package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anjiri1684/trivia_api/models"
	"gorm.io/gorm"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrConstraint = errors.New("constraint violation")
	ErrStorage    = errors.New("storage failure")
)

// QuestionRepository is everything the handlers and jobs need from storage.
type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]models.Question, error)
	ListQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]models.Question, error)
	GetQuestion(ctx context.Context, id int) (models.Question, error)
	CreateQuestion(ctx context.Context, q *models.Question) error
	UpdateQuestion(ctx context.Context, q *models.Question) error
	DeleteQuestion(ctx context.Context, id int) error
	CountQuestions(ctx context.Context) (int64, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int) (models.Category, error)
	ListOrphanQuestions(ctx context.Context) ([]models.Question, error)
}

type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	if err := r.db.WithContext(ctx).Order("id").Find(&questions).Error; err != nil {
		return nil, classify("list questions", err)
	}
	return questions, nil
}

func (r *GormRepository) ListQuestionsByCategory(ctx context.Context, categoryID int) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("category = ?", categoryID).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, classify("list questions by category", err)
	}
	return questions, nil
}

// SearchQuestions matches term as a case-insensitive substring of the
// question text. LIKE wildcards in term are matched literally.
//
// Postgres folds case with ILIKE. SQLite's LOWER and LIKE only fold ASCII,
// so on other drivers the ordered listing is filtered here instead.
func (r *GormRepository) SearchQuestions(ctx context.Context, term string) ([]models.Question, error) {
	if r.db.Dialector.Name() == "postgres" {
		var questions []models.Question
		err := r.db.WithContext(ctx).
			Where(`question ILIKE ? ESCAPE '\'`, "%"+escapeLike(term)+"%").
			Order("id").
			Find(&questions).Error
		if err != nil {
			return nil, classify("search questions", err)
		}
		return questions, nil
	}

	all, err := r.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	needle := strings.ToLower(term)
	questions := make([]models.Question, 0)
	for _, q := range all {
		if strings.Contains(strings.ToLower(q.Question), needle) {
			questions = append(questions, q)
		}
	}
	return questions, nil
}

func (r *GormRepository) GetQuestion(ctx context.Context, id int) (models.Question, error) {
	var question models.Question
	if err := r.db.WithContext(ctx).First(&question, "id = ?", id).Error; err != nil {
		return models.Question{}, classify(fmt.Sprintf("get question %d", id), err)
	}
	return question, nil
}

func (r *GormRepository) CreateQuestion(ctx context.Context, q *models.Question) error {
	if err := r.db.WithContext(ctx).Create(q).Error; err != nil {
		return classify("create question", err)
	}
	return nil
}

func (r *GormRepository) UpdateQuestion(ctx context.Context, q *models.Question) error {
	result := r.db.WithContext(ctx).
		Model(&models.Question{}).
		Where("id = ?", q.ID).
		Select("question", "answer", "category", "difficulty").
		Updates(q)
	if result.Error != nil {
		return classify(fmt.Sprintf("update question %d", q.ID), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update question %d: %w", q.ID, ErrNotFound)
	}
	return nil
}

func (r *GormRepository) DeleteQuestion(ctx context.Context, id int) error {
	result := r.db.WithContext(ctx).Delete(&models.Question{}, "id = ?", id)
	if result.Error != nil {
		return classify(fmt.Sprintf("delete question %d", id), result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("delete question %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *GormRepository) CountQuestions(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Question{}).Count(&count).Error; err != nil {
		return 0, classify("count questions", err)
	}
	return count, nil
}

func (r *GormRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, classify("list categories", err)
	}
	return categories, nil
}

func (r *GormRepository) GetCategory(ctx context.Context, id int) (models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return models.Category{}, classify(fmt.Sprintf("get category %d", id), err)
	}
	return category, nil
}

// ListOrphanQuestions returns questions whose category reference has no
// matching category row.
func (r *GormRepository) ListOrphanQuestions(ctx context.Context) ([]models.Question, error) {
	var questions []models.Question
	err := r.db.WithContext(ctx).
		Where("category NOT IN (?)", r.db.Model(&models.Category{}).Select("id")).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, classify("list orphan questions", err)
	}
	return questions, nil
}

func classify(op string, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated),
		errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%s: %w: %w", op, ErrConstraint, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
