package quizController

import (
	"fmt"

	"educare/middleware"
	"educare/models"
	"educare/services"
	"educare/validators"
	quizValidator "educare/validators/quiz"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Controller handles the quiz and activity score routes.
type Controller struct {
	profiles *services.ProfileService
	bank     *services.QuizBank
	log      *zap.Logger
}

// New returns the quiz handlers backed by profiles and bank.
func New(profiles *services.ProfileService, bank *services.QuizBank, log *zap.Logger) *Controller {
	return &Controller{profiles: profiles, bank: bank, log: log}
}

// SubmitQuiz handles POST /submit-quiz.
func (h *Controller) SubmitQuiz(c *fiber.Ctx) error {
	reqData := validators.Validated[models.SubmitQuizRequest](c)

	user, err := h.profiles.SubmitQuiz(c.UserContext(), middleware.UserID(c), *reqData)
	if err != nil {
		return middleware.Fail(c, h.log, "submitting quiz", err)
	}
	return middleware.Success(c, fiber.Map{"user": user})
}

// QuizQuestions handles GET /quiz-questions.
func (h *Controller) QuizQuestions(c *fiber.Ctx) error {
	query := validators.Validated[quizValidator.QuestionQuery](c)

	questions, err := h.bank.Questions(c.UserContext(), query.Category, query.Count)
	if err != nil {
		return middleware.Fail(c, h.log, "getting quiz questions", err)
	}
	return middleware.Success(c, fiber.Map{"questions": questions})
}

// InitQuizData handles POST /init-quiz-data.
func (h *Controller) InitQuizData(c *fiber.Ctx) error {
	n, err := h.bank.Seed(c.UserContext())
	if err != nil {
		return middleware.Fail(c, h.log, "initializing quiz data", err)
	}
	return middleware.Success(c, fiber.Map{"message": fmt.Sprintf("%d quiz questions initialized", n)})
}

// SaveActivityScore handles POST /save-activity-score for a game, puzzle or
// music result.
func (h *Controller) SaveActivityScore(c *fiber.Ctx) error {
	reqData := validators.Validated[models.SaveActivityRequest](c)

	user, err := h.profiles.SaveActivityScore(c.UserContext(), middleware.UserID(c), *reqData)
	if err != nil {
		return middleware.Fail(c, h.log, "saving activity score", err)
	}
	return middleware.Success(c, fiber.Map{"user": user})
}
