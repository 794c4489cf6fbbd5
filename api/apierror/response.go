package apierror

// Response is the JSON representation of a collection of errors
type Response struct {
	Errors []ErrorResponse `json:"errors"`
	Meta   interface{}     `json:"meta,omitempty"`
}

// ErrorResponse is the JSON representation of a single error
type ErrorResponse struct {
	ShortMessage string      `json:"message"`
	LongMessage  string      `json:"long_message"`
	Code         string      `json:"code"`
	Meta         interface{} `json:"meta,omitempty"`
}

// ToResponse converts an Error to a Response
func ToResponse(e Error) Response {
	return Response{
		Errors: e.ToErrorResponses(),
		Meta:   e.Meta(),
	}
}
