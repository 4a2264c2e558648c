package model

type User struct {
	BaseModel
	Username  string `gorm:"type:varchar(150);uniqueIndex;not null" json:"username" form:"username" binding:"required"`
	Email     string `gorm:"uniqueIndex;not null;type:varchar(255)" json:"email" form:"email" binding:"required,email"`
	FirstName string `gorm:"type:varchar(30)" json:"firstName" form:"firstName"`
	LastName  string `gorm:"type:varchar(30)" json:"lastName" form:"lastName"`
	// bcrypt hash, never serialized
	Password string `gorm:"type:text;not null" json:"-"`
}

func (u User) TableName() string {
	return "users"
}
