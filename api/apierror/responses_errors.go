package apierror

import (
	"fmt"
	"net/http"
)

// InvalidRequestBody signifies an error when the body of the request does not conform to the expected format
func InvalidRequestBody(err error) Error {
	return New(http.StatusBadRequest, &mainError{
		shortMessage: "Request body invalid",
		longMessage:  "The request body is invalid. Please consult the API documentation for more information.",
		code:         RequestBodyInvalidCode,
		cause:        err,
	})
}

func FormInvalidParameterValue(param string, value string) Error {
	return New(http.StatusBadRequest, &mainError{
		shortMessage: fmt.Sprintf("%s is invalid", param),
		longMessage:  fmt.Sprintf("%s does not match one of the allowed values for parameter %s", value, param),
		code:         FormInvalidParameterValueCode,
	})
}

func FormValidationFailed(err error) Error {
	return New(http.StatusUnprocessableEntity, &mainError{
		shortMessage: "Validation failed",
		longMessage:  "One or more parameters have invalid values.",
		code:         FormValidationFailedCode,
		cause:        err,
	})
}

// SerializerNotRegistered denotes a configuration bug: no serializer could
// be resolved for the given resource. It is fatal and never recovered per
// request.
func SerializerNotRegistered(resource string) Error {
	return New(http.StatusInternalServerError, &mainError{
		shortMessage: "Serializer not registered",
		longMessage:  fmt.Sprintf("No serializer is registered for the resource '%s'. Register one on the definition or pass WithSerializer at dispatch.", resource),
		code:         SerializerNotRegisteredCode,
	})
}

// ResponderRenderNotImplemented is returned when the default Render of a
// responder is invoked without being overridden.
func ResponderRenderNotImplemented() Error {
	return New(http.StatusInternalServerError, &mainError{
		shortMessage: "Responder render not implemented",
		longMessage:  "The responder does not implement Render. Override it or expose the requested action via RespondTo.",
		code:         ResponderRenderNotImplementedCode,
	})
}

// ActionNotImplemented names a generated REST action that has no built-in
// default behavior.
func ActionNotImplemented(action string) Error {
	return New(http.StatusNotImplemented, &mainError{
		shortMessage: "Action not implemented",
		longMessage:  fmt.Sprintf("No default behavior exists for the action '%s'.", action),
		code:         ActionNotImplementedCode,
	})
}

// RecordMissingCapability denotes that a CRUD default handler was invoked
// with a record that lacks the persistence capability the handler relies on.
func RecordMissingCapability(action, capability string) Error {
	return New(http.StatusInternalServerError, &mainError{
		shortMessage: "Record capability missing",
		longMessage:  fmt.Sprintf("The '%s' handler requires the record to implement %s.", action, capability),
		code:         RecordMissingCapabilityCode,
	})
}

// Unexpected wraps any non-API error
func Unexpected(err error) Error {
	return New(http.StatusInternalServerError, &mainError{
		shortMessage: "Unexpected error",
		longMessage:  "An unexpected error occurred while producing the response.",
		code:         UnexpectedErrorCode,
		cause:        err,
	})
}
