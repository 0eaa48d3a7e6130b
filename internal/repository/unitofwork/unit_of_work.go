package unitofwork

import (
	"context"

	"ai-realestate-be/internal/entity"
	"ai-realestate-be/internal/repository/contract"
)

// UnitOfWork groups reads and writes against the key-value store. Between
// Begin and Commit writes are staged; Commit flushes them as one batch and
// emits a single change notification.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TopicRepository(p entity.Product) contract.TopicRepository
	ActiveChatRepository(p entity.Product) contract.ActiveChatRepository
	AssetRepository(p entity.Product) contract.AssetRepository
	PreferenceRepository() contract.PreferenceRepository
}
