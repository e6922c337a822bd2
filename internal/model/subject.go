package model

// Subject 题目分组的参考数据
// swagger:model Subject
type Subject struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Color       string `gorm:"size:20" json:"color"`
}

func (Subject) TableName() string {
	return "subjects"
}
