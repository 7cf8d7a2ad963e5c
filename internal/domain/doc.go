// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/note). This root package
// holds sentinel errors and the validation result structure shared between
// the application layer and the HTTP adapter.
package domain
