// Package classifier provides the HTTP client for the external emotion
// classification service. It speaks the OpenAI-compatible chat-completions
// protocol, handles authentication, retries transient failures, and parses
// the model's JSON verdict into a structured annotation.
//
// The package is an opaque annotator from the cipher core's point of view:
// nothing here affects encryption behavior, and every failure mode is meant
// to be recoverable by the caller (annotation dropped, operation proceeds).
package classifier
