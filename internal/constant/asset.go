package constant

// Allowed asset extensions, lowercase without the leading dot.
var (
	AllowedImageExtensions = []string{"jpg", "jpeg", "png"}
	AllowedFileExtensions  = []string{"pdf", "doc", "docx", "xls", "xlsx"}
)

// Object name the profile avatar falls back to when the user never uploaded one.
const DefaultAvatarObject = "images/person.png"
