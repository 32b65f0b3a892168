package domain

// Envelope is the uniform result wrapper returned by every access service
// operation. The JSON shape {success, data, error} is a frozen contract:
// data and error marshal as null when absent.
type Envelope[T any] struct {
	Success bool    `json:"success"`
	Data    *T      `json:"data"`
	Error   *string `json:"error"`
}

func OK[T any](data T) Envelope[T] {
	return Envelope[T]{Success: true, Data: &data}
}

func Fail[T any](message string) Envelope[T] {
	return Envelope[T]{Success: false, Error: &message}
}
