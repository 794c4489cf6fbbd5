package serialize

import "fmt"

// CollectionResponse is the success envelope for list-producing actions.
type CollectionResponse struct {
	Data []map[string]any `json:"data"`
	Meta map[string]any   `json:"meta,omitempty"`
}

func Collection(data []map[string]any, meta map[string]any) *CollectionResponse {
	return &CollectionResponse{
		Data: data,
		Meta: meta,
	}
}

// ItemResponse is the success envelope for single-item actions that wrap
// their payload. The built-in show handler returns the bare serialized map
// instead.
type ItemResponse struct {
	Data map[string]any `json:"data"`
}

func SingleItem(data map[string]any) *ItemResponse {
	return &ItemResponse{Data: data}
}

// ValidationErrorsResponse carries the record's own validation messages.
// It is a payload, not an error: validation failures are never raised.
type ValidationErrorsResponse struct {
	Errors []string `json:"errors"`
}

func ValidationErrors(messages []string) *ValidationErrorsResponse {
	if messages == nil {
		messages = []string{}
	}
	return &ValidationErrorsResponse{Errors: messages}
}

type MessageResponse struct {
	Message string `json:"message"`
}

func Message(text string) *MessageResponse {
	return &MessageResponse{Message: text}
}

// UnsupportedActionResponse is the diagnostic envelope produced when no
// handler resolves for the requested action.
type UnsupportedActionResponse struct {
	Error       string                   `json:"error"`
	Message     string                   `json:"message"`
	Details     UnsupportedActionDetails `json:"details"`
	Suggestions [2]string                `json:"suggestions"`
}

type UnsupportedActionDetails struct {
	Action         string `json:"action"`
	Controller     string `json:"controller"`
	RequiredMethod string `json:"required_method"`
}

func UnsupportedAction(action, controller, requiredMethod string) *UnsupportedActionResponse {
	return &UnsupportedActionResponse{
		Error:   "Action not supported",
		Message: fmt.Sprintf("The action '%s' is not supported by the '%s' controller.", action, controller),
		Details: UnsupportedActionDetails{
			Action:         action,
			Controller:     controller,
			RequiredMethod: requiredMethod,
		},
		Suggestions: [2]string{
			fmt.Sprintf("Define a handler for '%s' with RespondFor on the controller definition.", action),
			fmt.Sprintf("Map '%s' to an action that already has a handler with MapAction.", action),
		},
	}
}
