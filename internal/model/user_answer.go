package model

// UserAnswer 答题过程中的单题作答，IsCorrect 在每次保存时计算，只有严格模式下同题重复作答会覆盖
type UserAnswer struct {
	BaseModel
	QuizAttemptID    uint `gorm:"index:idx_answer_attempt_question,priority:1;not null" json:"quizAttemptId"`
	QuestionID       uint `gorm:"index:idx_answer_attempt_question,priority:2;not null" json:"questionId"`
	SelectedOptionID uint `json:"selectedOptionId"`
	IsCorrect        bool `gorm:"default:false" json:"isCorrect"`

	QuizAttempt *QuizAttempt `gorm:"foreignKey:QuizAttemptID" json:"-"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
