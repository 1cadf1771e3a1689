package resp

// ErrorBody is the JSON body of every failed request.
type ErrorBody struct {
	Error string `json:"error"`
}

func Error(message string) ErrorBody {
	return ErrorBody{Error: message}
}

// Health is the GET /health payload.
type Health struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
