// Package mocks provides testify-based test doubles for the port interfaces
// in internal/ports.
package mocks
