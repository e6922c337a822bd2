package model

import "time"

// swagger:model Quiz
type Quiz struct {
	ID             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title          string    `gorm:"size:255;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	TimeLimit      int       `gorm:"default:0" json:"timeLimit"` // 分钟
	TotalQuestions int       `gorm:"default:0" json:"totalQuestions"`
	Difficulty     string    `gorm:"size:50" json:"difficulty"`
	Active         bool      `gorm:"not null" json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (Quiz) TableName() string {
	return "quizzes"
}
