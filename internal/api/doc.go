// Package api contains the HTTP handlers, request/response models, and the
// mapping from service-layer errors to HTTP status codes.
package api
