package model

// Comment is user feedback on a project, optionally carrying image and
// file attachments. Removed together with its user or project.
type Comment struct {
	BaseModel
	UserID    string  `gorm:"type:text;not null;index" json:"user_id"`
	User      User    `gorm:"constraint:OnDelete:CASCADE" json:"user"`
	ProjectID string  `gorm:"type:text;not null;index" json:"project_id"`
	Project   Project `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	Text string `gorm:"type:text;not null" json:"text" form:"text" binding:"required,strNotEmpty"`

	Images []Image `gorm:"many2many:comment_images" json:"images"`
	Files  []File  `gorm:"many2many:comment_files" json:"files"`
}

func (c Comment) TableName() string {
	return "comments"
}
