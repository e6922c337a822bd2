package model

import "time"

type AttemptStatus string

const (
	AttemptStarted   AttemptStatus = "started"
	AttemptCompleted AttemptStatus = "completed"
)

// QuizAttempt 用户的一次答题记录，完成时写入一次统计结果
// swagger:model QuizAttempt
type QuizAttempt struct {
	BaseModel

	UserID           uint          `gorm:"index;not null" json:"userId"`
	QuizID           uint          `gorm:"index;not null" json:"quizId"`
	StartTime        time.Time     `gorm:"not null" json:"startTime"`
	EndTime          *time.Time    `json:"endTime,omitempty"`
	Score            *int          `json:"score,omitempty"`
	TotalQuestions   int           `gorm:"default:0" json:"totalQuestions"`
	CorrectAnswers   int           `gorm:"default:0" json:"correctAnswers"`
	Status           AttemptStatus `gorm:"size:16;not null;default:'started';index" json:"status"`
	TimeSpentSeconds int           `gorm:"default:0" json:"timeSpentSeconds"`
}

func (QuizAttempt) TableName() string {
	return "quiz_attempts"
}

func (a *QuizAttempt) IsCompleted() bool {
	return a.Status == AttemptCompleted
}
