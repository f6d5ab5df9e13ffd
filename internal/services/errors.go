// Package services defines the business logic for contracts, alerts,
// and chat. This file centralizes common service-level error values so
// that they can be consistently returned by service methods and checked
// by callers.
//
// These errors are intended for internal use by the service layer;
// translation into user-facing messages or HTTP status codes is
// performed at the handler layer.
package services

import "errors"

var (
	// ErrContractNotFound indicates that no contract exists with the
	// requested id.
	ErrContractNotFound = errors.New("contract not found")

	// ErrSessionNotFound indicates that no chat session exists under
	// the requested identifier.
	ErrSessionNotFound = errors.New("chat session not found")

	// ErrEmptyMessage is returned when a chat request carries no
	// message text.
	ErrEmptyMessage = errors.New("message is empty")
)
