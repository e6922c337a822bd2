package model

// swagger:model Question
type Question struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuizID       uint   `gorm:"index:idx_question_quiz_subject_order,priority:1;not null" json:"quizId"`
	SubjectID    uint   `gorm:"index:idx_question_quiz_subject_order,priority:2;not null" json:"subjectId"`
	QuestionText string `gorm:"type:text;not null" json:"questionText"`
	QuestionType string `gorm:"size:50;default:'single_choice'" json:"questionType"`
	Points       int    `gorm:"default:0" json:"points"`
	OrderNum     int    `gorm:"index:idx_question_quiz_subject_order,priority:3;default:0" json:"orderNum"`

	Quiz    *Quiz    `gorm:"foreignKey:QuizID" json:"-"`
	Subject *Subject `gorm:"foreignKey:SubjectID" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionOption 题目的一个可选答案
type QuestionOption struct {
	ID         uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	OptionText string `gorm:"type:text;not null" json:"optionText"`
	IsCorrect  bool   `gorm:"default:false" json:"isCorrect"`

	Question *Question `gorm:"foreignKey:QuestionID" json:"-"`
}

func (QuestionOption) TableName() string {
	return "question_options"
}
