// Package responder maps inbound action names to response-producing
// handlers and dispatches them.
//
// A Definition is the configuration-time registry of one controller: its
// action aliases, its handlers and its serializer. Definitions are built
// once at setup, optionally extended per sub-controller, and only read
// during request handling.
//
// RenderWith is the single per-request entry point. It builds the request
// context, resolves the serializer and the handler, and returns the
// handler's Result. When no handler resolves, it returns the structured
// "Action not supported" payload instead of an error; every other failure
// surfaces as an apierror.Error for the hosting framework to report.
//
// Handlers for index, show, create, update and destroy are always available
// as built-in defaults. There is no other implicit fallback: unknown actions
// must be declared through RespondFor or mapped with MapAction.
package responder
