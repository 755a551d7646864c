// Package mocks provides mock implementations for testing.
//
// SessionStore is mocked with go.uber.org/mock (gomock); regenerate with:
//
//	go generate ./internal/mocks
//
// The BackendClient test double lives in mocks/backend and is hand-written:
// the interface is wide and most tests only care about two or three calls, so
// func-field overrides read better than twenty EXPECT chains.
package mocks

// Generate mock for SessionStore from internal/ports.
//go:generate go run go.uber.org/mock/mockgen -package=mocks -destination=session_store_mock.go github.com/docvault/docvault-ui/internal/ports SessionStore
