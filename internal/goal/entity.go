package goal

type Goal struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string `gorm:"type:text;not null" json:"title"`
	IsComplete bool   `gorm:"column:is_complete;not null;default:false" json:"isComplete"`
}

func (Goal) TableName() string {
	return "goals"
}
