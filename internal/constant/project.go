package constant

const (
	// Placeholder used when a project or action is created without a description.
	DefaultDescription = "No description"

	ProjectTitleMinLength = 1
	ProjectTitleMaxLength = 150

	RatingMinValue = 1
	RatingMaxValue = 5
)

const (
	ReferenceNameMaxLength      = 100
	OrganizationalNameMaxLength = 255
	StatusNameMaxLength         = 50
	ActionNameMaxLength         = 50
)
