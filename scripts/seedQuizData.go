package main

import (
	"context"
	"encoding/csv"
	"flag"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"educare/config"
	"educare/database"
	"educare/kv"
	"educare/logger"
	"educare/metrics"
	"educare/models"
	"educare/random"
	"educare/services"

	"go.uber.org/zap"
)

// Seeds the quiz questions into the configured key-value store and
// optionally dumps what is stored to a CSV file.
func main() {
	dump := flag.String("dump", "", "write the stored questions to this CSV file")
	skipSeed := flag.Bool("no-seed", false, "only dump, do not write the question set")
	flag.Parse()

	cfg := config.LoadConfig()
	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	store, closeStore, err := database.OpenStore(cfg, zlog)
	if err != nil {
		zlog.Fatal("failed to open key-value store", zap.Error(err))
	}
	defer closeStore()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if !*skipSeed {
		bank := services.NewQuizBank(store, random.NewTimeSeeded(), metrics.NewNop(), zlog)
		if _, err := bank.Seed(ctx); err != nil {
			zlog.Fatal("seeding failed", zap.Error(err))
		}
	}

	questions, err := kv.ValuesJSON[models.QuizQuestion](ctx, store, models.QuizKeyPrefix)
	if err != nil {
		zlog.Fatal("failed to list questions", zap.Error(err))
	}

	perCategory := make(map[string]int)
	for _, q := range questions {
		perCategory[q.Category]++
	}
	for _, cat := range models.Categories {
		zlog.Info("stored questions", zap.String("category", cat), zap.Int("count", perCategory[cat]))
	}

	if *dump == "" {
		return
	}

	file, err := os.Create(*dump)
	if err != nil {
		zlog.Fatal("failed to create CSV file", zap.Error(err))
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	_ = writer.Write([]string{"id", "category", "difficulty", "points", "question", "options", "correctAnswer"})
	for _, q := range questions {
		_ = writer.Write([]string{
			q.ID,
			q.Category,
			string(q.Difficulty),
			strconv.Itoa(q.Points),
			q.Question,
			strings.Join(q.Options, "|"),
			q.CorrectAnswer,
		})
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		zlog.Fatal("failed to write CSV", zap.Error(err))
	}
	zlog.Info("questions exported", zap.String("file", *dump), zap.Int("count", len(questions)))
}
