package main

import (
	"log"

	config "github.com/anjiri1684/trivia_api/configs"
	"github.com/anjiri1684/trivia_api/database"
	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/jobs"
	"github.com/anjiri1684/trivia_api/repository"
	"github.com/anjiri1684/trivia_api/routes"
	"github.com/robfig/cron/v3"
)

func main() {
	settings := config.Load()

	database.ConnectDB(settings)
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	if settings.SeedData {
		if err := database.Seed(database.DB); err != nil {
			log.Fatalf("🔥 Failed to seed database: %v", err)
		}
	}

	repo := repository.NewGormRepository(database.DB)

	c := cron.New()
	if settings.AuditSchedule != "" {
		if _, err := jobs.ScheduleCategoryAudit(c, settings.AuditSchedule, repo); err != nil {
			log.Fatalf("🔥 Invalid AUDIT_SCHEDULE %q: %v", settings.AuditSchedule, err)
		}
		c.Start()
		defer c.Stop()
		log.Println("✅ Cron job for category audit scheduled successfully.")
	}

	app := routes.NewApp(handlers.New(repo), settings)

	log.Printf("✅ Server is running on port %s", settings.Port)
	if err := app.Listen(":" + settings.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
