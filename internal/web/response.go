package web

// Response is the JSON envelope of every API reply.
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

// OK wraps data in a successful envelope.
func OK(data any) Response {
	return Response{Status: StatusOK, Data: data}
}

// Error returns an error envelope.
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// ErrorWithData returns an error envelope that still carries a payload, used
// when a quote was evaluated but produced a notice instead of a fee.
func ErrorWithData(msg string, data any) Response {
	return Response{Status: StatusError, Error: msg, Data: data}
}
