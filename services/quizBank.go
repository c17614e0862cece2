package services

import (
	"context"
	"fmt"

	"educare/kv"
	"educare/metrics"
	"educare/models"
	"educare/random"

	"go.uber.org/zap"
)

// QuizBank stores quiz questions under quiz:<id> and serves random selections.
type QuizBank struct {
	store   kv.Store
	rnd     random.Source
	metrics *metrics.Metrics
	log     *zap.Logger
}

// NewQuizBank serves questions from store, ordering them with rnd.
func NewQuizBank(store kv.Store, rnd random.Source, m *metrics.Metrics, log *zap.Logger) *QuizBank {
	return &QuizBank{store: store, rnd: rnd, metrics: m, log: log}
}

// SeedQuestions returns a copy of the fixed question set.
func SeedQuestions() []models.QuizQuestion {
	out := make([]models.QuizQuestion, len(seedQuestions))
	copy(out, seedQuestions)
	return out
}

// Seed writes every seed question keyed by its id. Running it again
// overwrites the same keys, so it never duplicates questions.
func (b *QuizBank) Seed(ctx context.Context) (int, error) {
	for _, q := range seedQuestions {
		if err := q.Validate(); err != nil {
			return 0, err
		}
		if err := kv.SetJSON(ctx, b.store, models.QuizKey(q.ID), q); err != nil {
			return 0, fmt.Errorf("store question %s: %w", q.ID, err)
		}
	}
	b.metrics.QuestionsSeeded.Add(float64(len(seedQuestions)))
	b.log.Info("quiz questions initialized", zap.Int("count", len(seedQuestions)))
	return len(seedQuestions), nil
}

// Questions returns up to count stored questions in category ("all" means
// any), in uniformly random order. A count of zero or less selects nothing.
func (b *QuizBank) Questions(ctx context.Context, category string, count int) ([]models.QuizQuestion, error) {
	if category == "" {
		category = models.CategoryAll
	}
	if count <= 0 {
		return []models.QuizQuestion{}, nil
	}

	all, err := kv.ValuesJSON[models.QuizQuestion](ctx, b.store, models.QuizKeyPrefix)
	if err != nil {
		return nil, err
	}

	matching := make([]models.QuizQuestion, 0, len(all))
	for _, q := range all {
		if category == models.CategoryAll || q.Category == category {
			matching = append(matching, q)
		}
	}
	random.ShuffleSlice(b.rnd, matching)
	if len(matching) > count {
		matching = matching[:count]
	}
	return matching, nil
}
