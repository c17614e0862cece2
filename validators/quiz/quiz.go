package quizValidator

import (
	"strings"

	"educare/models"
	"educare/utils"
	"educare/validators"

	"github.com/gofiber/fiber/v2"
)

// DefaultQuestionCount is used when count is missing or not a number.
const DefaultQuestionCount = 10

// QuestionQuery is the parsed query of quiz-questions.
type QuestionQuery struct {
	Category string
	Count    int
}

func SubmitQuiz() fiber.Handler {
	return validators.Body[models.SubmitQuizRequest]()
}

func SaveActivityScore() fiber.Handler {
	return validators.Body[models.SaveActivityRequest]()
}

// QuizQuestions reads category (default "all") and count (default 10). Any
// count is accepted; the bank truncates to what it holds.
func QuizQuestions() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := &QuestionQuery{
			Category: strings.TrimSpace(c.Query("category", models.CategoryAll)),
			Count:    utils.AtoiDefault(c.Query("count"), DefaultQuestionCount),
		}
		if q.Category == "" {
			q.Category = models.CategoryAll
		}
		c.Locals(validators.BodyKey, q)
		return c.Next()
	}
}
