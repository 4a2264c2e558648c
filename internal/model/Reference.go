package model

// Reference holds the shape shared by every lookup entity: a uniquely named
// label with a URL-safe slug derived from the name. The slug is computed by
// util.Slugify before persistence, never inside the model.
type Reference struct {
	BaseModel
	Name string `gorm:"type:varchar(255);uniqueIndex;not null" json:"name" form:"name" binding:"required,strNotEmpty"`
	Slug string `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
}

func (r Reference) GetName() string {
	return r.Name
}

func (r Reference) GetSlug() string {
	return r.Slug
}

func (r *Reference) SetNameSlug(name, slug string) {
	r.Name = name
	r.Slug = slug
}

// ReferenceEntity is what the shared lookup handlers need from a concrete
// entity pointer.
type ReferenceEntity interface {
	GetID() string
	GetName() string
	GetSlug() string
	SetNameSlug(name, slug string)
	NameMaxLength() int
}
