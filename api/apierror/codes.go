package apierror

const (
	ActionNotImplementedCode          = "action_not_implemented"
	FormInvalidParameterValueCode     = "form_param_value_invalid"
	FormValidationFailedCode          = "form_validation_failed"
	RecordMissingCapabilityCode       = "record_missing_capability"
	RequestBodyInvalidCode            = "request_body_invalid"
	ResponderRenderNotImplementedCode = "responder_render_not_implemented"
	SerializerNotRegisteredCode       = "serializer_not_registered"
	UnexpectedErrorCode               = "unexpected_error"
)
