package oderr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option    { return func(e *Error) { e.Message = msg } }
func WithValue(value string) Option    { return func(e *Error) { e.Value = value } }
func WithElement(name string) Option   { return func(e *Error) { e.Element = name } }
func WithAttribute(name string) Option { return func(e *Error) { e.Attr = name } }
