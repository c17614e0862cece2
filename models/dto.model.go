package models

// Request bodies accepted by the HTTP API.

type SignupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CompleteProfileRequest struct {
	Avatar *string `json:"avatar"`
	Age    *int    `json:"age" validate:"omitempty,min=0,max=120"`
	DOB    *string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
}

type SubmitQuizRequest struct {
	Category       string `json:"category" validate:"required"`
	Score          int    `json:"score" validate:"min=0"`
	TotalQuestions int    `json:"totalQuestions" validate:"min=0"`
	Difficulty     string `json:"difficulty"`
}

type SaveActivityRequest struct {
	ActivityType string `json:"activityType" validate:"required,oneof=game puzzle music"`
	ActivityName string `json:"activityName" validate:"required"`
	Score        int    `json:"score" validate:"min=0"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6"`
}

// Photo is an uploaded profile image.
type Photo struct {
	ContentType string
	Data        []byte
}

// Progress summarises a profile's points over time.
type Progress struct {
	UserID          string `json:"userId"`
	TotalPoints     int    `json:"totalPoints"`
	QuizzesTaken    int    `json:"quizzesTaken"`
	ActivitiesDone  int    `json:"activitiesDone"`
	PointsToday     int    `json:"pointsToday"`
	PointsThisWeek  int    `json:"pointsThisWeek"`
	BestQuizScore   int    `json:"bestQuizScore"`
	FavoriteQuizCat string `json:"favoriteQuizCategory,omitempty"`
}
