package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Internal error"

	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
