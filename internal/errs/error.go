package errs

import "net/http"

// Error is a failure the HTTP boundary can map mechanically: the service
// layer decides the status and the public message, handlers just write them.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound reports an absent resource, e.g. login with an unknown email.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// BadRequest reports a missing or malformed required field. Login with a
// wrong password also maps here, matching the reference wire contract.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Forbidden reports an authorization or business-rule violation on user
// operations: not the account owner, self-follow, duplicate follow.
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// Unauthorized reports a post-ownership violation. Post routes answer 401
// where user routes answer 403; both contracts are kept as-is.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Internal reports a persistence or lookup failure with a fixed public
// message instead of the raw driver error.
func Internal(msg string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: msg}
}
