package user

const MaxNameLength = 50

type User struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(50);not null" json:"name"`
	Age  int    `gorm:"not null" json:"age"`
}

func (User) TableName() string {
	return "users"
}
