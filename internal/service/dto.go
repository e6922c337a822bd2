package service

import (
	"quiz_backend/internal/model"
	"time"
)

type QuizDTO struct {
	ID             uint      `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	TimeLimit      int       `json:"timeLimit"`
	TotalQuestions int       `json:"totalQuestions"`
	Difficulty     string    `json:"difficulty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

type SubjectDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// QuestionDTO 题目信息，附带所属学科的名称和颜色
type QuestionDTO struct {
	ID           uint   `json:"id"`
	QuizID       uint   `json:"quizId"`
	SubjectID    uint   `json:"subjectId"`
	SubjectName  string `json:"subjectName,omitempty"`
	SubjectColor string `json:"subjectColor,omitempty"`
	QuestionText string `json:"questionText"`
	QuestionType string `json:"questionType"`
	Points       int    `json:"points"`
	OrderNum     int    `json:"orderNum"`
}

type QuestionOptionDTO struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"questionId"`
	OptionText string `json:"optionText"`
	IsCorrect  bool   `json:"isCorrect"`
}

type QuizAttemptDTO struct {
	ID               uint       `json:"id"`
	UserID           uint       `json:"userId"`
	QuizID           uint       `json:"quizId"`
	StartTime        time.Time  `json:"startTime"`
	EndTime          *time.Time `json:"endTime"`
	Score            *int       `json:"score"`
	TotalQuestions   int        `json:"totalQuestions"`
	CorrectAnswers   int        `json:"correctAnswers"`
	Completed        bool       `json:"completed"`
	TimeSpentSeconds int        `json:"timeSpentSeconds"`
}

type UserAnswerDTO struct {
	ID               uint `json:"id"`
	QuizAttemptID    uint `json:"quizAttemptId"`
	QuestionID       uint `json:"questionId"`
	SelectedOptionID uint `json:"selectedOptionId"`
	IsCorrect        bool `json:"isCorrect"`
}

func ToQuizDTO(q *model.Quiz) QuizDTO {
	return QuizDTO{
		ID:             q.ID,
		Title:          q.Title,
		Description:    q.Description,
		TimeLimit:      q.TimeLimit,
		TotalQuestions: q.TotalQuestions,
		Difficulty:     q.Difficulty,
		Active:         q.Active,
		CreatedAt:      q.CreatedAt,
	}
}

func ToSubjectDTO(s *model.Subject) SubjectDTO {
	return SubjectDTO{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Color:       s.Color,
	}
}

// ToQuestionDTO subject 为 nil 时学科字段留空
func ToQuestionDTO(q *model.Question, subject *model.Subject) QuestionDTO {
	dto := QuestionDTO{
		ID:           q.ID,
		QuizID:       q.QuizID,
		SubjectID:    q.SubjectID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
		Points:       q.Points,
		OrderNum:     q.OrderNum,
	}
	if subject != nil {
		dto.SubjectName = subject.Name
		dto.SubjectColor = subject.Color
	}
	return dto
}

func ToOptionDTO(o *model.QuestionOption) QuestionOptionDTO {
	return QuestionOptionDTO{
		ID:         o.ID,
		QuestionID: o.QuestionID,
		OptionText: o.OptionText,
		IsCorrect:  o.IsCorrect,
	}
}

func ToAttemptDTO(a *model.QuizAttempt) QuizAttemptDTO {
	return QuizAttemptDTO{
		ID:               a.ID,
		UserID:           a.UserID,
		QuizID:           a.QuizID,
		StartTime:        a.StartTime,
		EndTime:          a.EndTime,
		Score:            a.Score,
		TotalQuestions:   a.TotalQuestions,
		CorrectAnswers:   a.CorrectAnswers,
		Completed:        a.IsCompleted(),
		TimeSpentSeconds: a.TimeSpentSeconds,
	}
}

func ToUserAnswerDTO(a *model.UserAnswer) UserAnswerDTO {
	return UserAnswerDTO{
		ID:               a.ID,
		QuizAttemptID:    a.QuizAttemptID,
		QuestionID:       a.QuestionID,
		SelectedOptionID: a.SelectedOptionID,
		IsCorrect:        a.IsCorrect,
	}
}
