package store

import "context"

// UseCase is the reference task store. It owns ids and ordering.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, ownerID string) (ListOutput, error)
}
