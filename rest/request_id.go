package rest

import "github.com/google/uuid"

type RequestIDFunc func() string

// DefaultRequestID generates a random UUID per request.
func DefaultRequestID() string {
	return uuid.NewString()
}
