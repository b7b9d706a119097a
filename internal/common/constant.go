package common

// AuthorizationHeaderName carries bearer tokens on GraphQL requests.
const AuthorizationHeaderName = "Authorization"

// RequestIDHeaderName is echoed back on every HTTP response.
const RequestIDHeaderName = "X-Request-ID"

// MaxNoteTitleLength mirrors the width of notes.title.
const MaxNoteTitleLength = 100

// MaxUserNameLength and MaxEmailLength mirror the widths of the "user" columns.
const (
	MaxUserNameLength = 100
	MaxEmailLength    = 100
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72
