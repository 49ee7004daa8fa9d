package handler

// Client-facing messages. The login failures for unknown email and wrong
// password share errInvalidCredentials on purpose: the two responses must
// stay byte-identical so registered emails cannot be enumerated.
const (
	errMissingFields      = "Missing fields"
	errEmailTaken         = "Email already in use"
	errInvalidCredentials = "Invalid credentials"
	errUserNotFound       = "User not found"
	errTokenInvalid       = "Invalid token"
	errTitleRequired      = "Title is required"
	errTaskNotFound       = "Task not found"
	errInternalServer     = "Server error"
)
