package services

import "context"

// Service runs one use case.
type Service[T any, S any] interface {
	Run(ctx context.Context, input T) (S, error)
}
