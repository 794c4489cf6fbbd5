package responder

// Result is the outcome of a handler: the payload to emit and the HTTP
// status to emit it with.
type Result struct {
	Payload any
	Status  int
}

func NewResult(payload any, status int) *Result {
	return &Result{Payload: payload, Status: status}
}

// HTTPStatus and HTTPPayload satisfy the respondhttp contracts so a Result
// can be returned straight from a respondhttp.Handler.
func (r *Result) HTTPStatus() int {
	return r.Status
}

func (r *Result) HTTPPayload() any {
	return r.Payload
}
