package utils

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Seeder writes the quiz question set into storage.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

// StartQuizSeedScheduler re-seeds the quiz questions on the given cron
// schedule. An empty schedule disables it and returns nil.
func StartQuizSeedScheduler(schedule string, seeder Seeder, log *zap.Logger) (*cron.Cron, error) {
	if schedule == "" {
		return nil, nil
	}

	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := seeder.Seed(ctx)
		if err != nil {
			log.Error("[QUIZ-SCHEDULER] seeding failed", zap.Error(err))
			return
		}
		log.Info("[QUIZ-SCHEDULER] quiz questions refreshed", zap.Int("count", n))
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Info("[QUIZ-SCHEDULER] started", zap.String("schedule", schedule))
	return c, nil
}
