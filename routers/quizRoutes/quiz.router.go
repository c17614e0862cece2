package quizRoutes

import (
	quizController "educare/controllers/quiz"
	quizValidator "educare/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(router fiber.Router, ctrl *quizController.Controller, requireAuth fiber.Handler) {
	router.Get("/quiz-questions", quizValidator.QuizQuestions(), ctrl.QuizQuestions)
	router.Post("/init-quiz-data", ctrl.InitQuizData)
	router.Post("/submit-quiz", requireAuth, quizValidator.SubmitQuiz(), ctrl.SubmitQuiz)
	router.Post("/save-activity-score", requireAuth, quizValidator.SaveActivityScore(), ctrl.SaveActivityScore)
}
