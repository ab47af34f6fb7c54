package apperror

type Error struct {
	Raw       error
	HTTPCode  int
	ErrorCode string
	Message   string
}

func NewError(err error, httpCode int, errorCode string, message string) Error {
	return Error{
		Raw:       err,
		HTTPCode:  httpCode,
		ErrorCode: errorCode,
		Message:   message,
	}
}

func (e Error) Error() string {
	if e.Raw != nil {
		return e.Raw.Error()
	}

	return e.Message
}

func (e Error) Unwrap() error {
	return e.Raw
}
