// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/list, domain/member).
// This root package holds the error taxonomy, the opaque field bag (Payload),
// remote response fields, validation rule declarations and sync states.
package domain
