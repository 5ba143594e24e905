// Package service provides application-level services orchestrating the
// account and task lifecycles. Service methods return sentinel errors for
// expected failure conditions; callers check them with errors.Is and the API
// layer maps them to HTTP status codes.
package service
