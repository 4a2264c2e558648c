package model

// Rating is a 1-5 score a user gives a project. Removed together with its
// user or project.
type Rating struct {
	BaseModel
	UserID    string  `gorm:"type:text;not null;index" json:"user_id"`
	User      User    `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	ProjectID string  `gorm:"type:text;not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Value int `gorm:"type:smallint;not null" json:"value" form:"value" binding:"required,gte=1,lte=5"`
}

func (r Rating) TableName() string {
	return "ratings"
}
