package nextrip

// ServiceError reports a failed exchange with the NexTrip service. When
// the service returned a response body, Message is that body verbatim;
// otherwise it is the transport error's message.
type ServiceError struct {
	// StatusCode is the HTTP status of the upstream response, or zero
	// when the request never produced one.
	StatusCode int
	Message    string
	Err        error
}

func (e *ServiceError) Error() string { return e.Message }

// Unwrap exposes the underlying transport or decode error, if any.
func (e *ServiceError) Unwrap() error { return e.Err }
