package model

// Like records whether a user liked or disliked a project. One row per
// user/project pair, removed together with either side.
type Like struct {
	BaseModel
	UserID    string  `gorm:"type:text;not null;uniqueIndex:idx_likes_user_project" json:"user_id"`
	User      User    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ProjectID string  `gorm:"type:text;not null;uniqueIndex:idx_likes_user_project" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	IsLike bool `gorm:"type:boolean;not null" json:"is_like" form:"isLike"`
}

func (l Like) TableName() string {
	return "likes"
}
