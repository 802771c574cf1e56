package jobs

import (
	"context"
	"log"
	"time"

	"github.com/anjiri1684/trivia_api/repository"
	"github.com/robfig/cron/v3"
)

const auditTimeout = 30 * time.Second

// AuditQuestionCategories reports questions whose category reference points
// at no category. Writes never check the reference, so this is where
// dangling ones surface.
func AuditQuestionCategories(ctx context.Context, repo repository.QuestionRepository) (int, error) {
	log.Println("Running job: AuditQuestionCategories...")

	orphans, err := repo.ListOrphanQuestions(ctx)
	if err != nil {
		log.Printf("Error auditing question categories: %v", err)
		return 0, err
	}

	if len(orphans) == 0 {
		log.Println("No questions with a missing category found.")
		return 0, nil
	}

	for _, q := range orphans {
		log.Printf("Question %d references missing category %d", q.ID, q.Category)
	}
	log.Printf("Found %d question(s) with a missing category.", len(orphans))
	return len(orphans), nil
}

func ScheduleCategoryAudit(c *cron.Cron, spec string, repo repository.QuestionRepository) (cron.EntryID, error) {
	return c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
		defer cancel()
		AuditQuestionCategories(ctx, repo)
	})
}
