// Package api exposes the card service over HTTP. Handlers decode and
// validate requests, call the service and translate violation kinds into
// status codes; error bodies carry a safe message and the request trace ID.
package api
