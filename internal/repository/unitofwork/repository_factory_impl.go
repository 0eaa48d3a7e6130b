package unitofwork

import (
	"context"
	"sync"

	"ai-realestate-be/internal/pkg/logger"
	"ai-realestate-be/internal/repository/contract"
)

type RepositoryFactoryImpl struct {
	store    contract.KeyValueStore
	notifier contract.ChangeNotifier
	logger   logger.ILogger

	// writeLock serializes read-modify-write cycles inside this process.
	// Other processes sharing the store are not coordinated with.
	writeLock *sync.Mutex
}

func NewRepositoryFactory(store contract.KeyValueStore, notifier contract.ChangeNotifier, log logger.ILogger) RepositoryFactory {
	return &RepositoryFactoryImpl{
		store:     store,
		notifier:  notifier,
		logger:    log,
		writeLock: &sync.Mutex{},
	}
}

func (f *RepositoryFactoryImpl) NewUnitOfWork(ctx context.Context) UnitOfWork {
	return &UnitOfWorkImpl{
		ctx:       ctx,
		store:     f.store,
		notifier:  f.notifier,
		logger:    f.logger,
		writeLock: f.writeLock,
	}
}
