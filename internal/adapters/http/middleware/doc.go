// Package middleware holds the inbound request pipeline, installed with
// chi's Router.Use in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Recovery is outermost so it also catches panics re-raised by Timeout.
package middleware
