package model

// Project is the central aggregate: scalar fields plus many-to-many
// associations and optional lookups. Deleting a category or status clears
// the field on the project instead of removing the row. Projects are never
// hard-deleted through the API, IsActive flips to false instead.
type Project struct {
	BaseModel
	Title       string `gorm:"type:varchar(150);not null" json:"title" form:"title" binding:"required,strNotEmpty,cmax=150"`
	Description string `gorm:"type:text;default:'No description'" json:"description" form:"description"`
	IsActive    bool   `gorm:"type:boolean;default:false" json:"is_active" form:"isActive"`

	CategoryID *string   `gorm:"type:text" json:"category_id"`
	Category   *Category `gorm:"constraint:OnDelete:SET NULL" json:"category,omitempty"`
	StatusID   *string   `gorm:"type:text" json:"status_id"`
	Status     *Status   `gorm:"constraint:OnDelete:SET NULL" json:"status,omitempty"`

	Authors []User  `gorm:"many2many:project_authors" json:"authors"`
	Tags    []Tag   `gorm:"many2many:project_tags" json:"tags"`
	Images  []Image `gorm:"many2many:project_images" json:"images"`
	Files   []File  `gorm:"many2many:project_files" json:"files"`
}

func (p Project) TableName() string {
	return "projects"
}
