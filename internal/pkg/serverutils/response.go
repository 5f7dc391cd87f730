package serverutils

// Response is the JSON envelope for every API reply.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}

// ErrorBody is the envelope for failed requests.
type ErrorBody struct {
	Message string `json:"message"`
}
