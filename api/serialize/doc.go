// Package serialize provides the serializer contract of the response layer
// and the envelopes responses are wrapped in.
//
// A Serializer turns a single record into a flat key-value representation.
// It receives the per-request Context so it can vary its output by view,
// actor or clock, but it never inspects the envelope it ends up in.
//
// Serializers are resolved through a Registry keyed by resource name. The
// lookup is explicit: nothing is derived from type names at runtime.
//
// The exported envelope types (CollectionResponse, ItemResponse,
// ValidationErrorsResponse, MessageResponse, UnsupportedActionResponse)
// define the wire contract. Their constructors are the only way handlers
// build payloads, so the JSON shapes stay in one place.
package serialize
