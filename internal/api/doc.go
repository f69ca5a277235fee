// Package api contains the HTTP handlers, request/response models and the
// error-to-status mapping. Handlers decode and validate input, call the
// services, and write the uniform response envelope; they hold no business
// rules of their own.
package api
