package models

// Typed failures the services return. The HTTP helper maps each type to a
// status code, handlers never inspect error strings.

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string { return e.Message }

type ErrorPermission struct {
	Message string
}

func (e ErrorPermission) Error() string { return e.Message }

type ErrorAuthentication struct {
	Message string
}

func (e ErrorAuthentication) Error() string { return e.Message }

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string { return e.Message }

type ErrorExpiredToken struct {
	Message string
}

func (e ErrorExpiredToken) Error() string { return e.Message }

// ErrorExternalService wraps an email or social-broadcast failure. It is
// surfaced to the caller and the logs but never unwinds committed state.
type ErrorExternalService struct {
	Message string
	Err     error
}

func (e ErrorExternalService) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e ErrorExternalService) Unwrap() error { return e.Err }
