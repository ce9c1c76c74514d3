package uow

import (
	"context"
)

type TX interface {
	Get(name RepositoryName) (Repository, error)
}

// DBTX дает репозиторию доступ к состоянию хранилища. Вне транзакции каждый
// вызов сериализуется через блокировки Store, внутри Do блокировка уже взята
// целиком на время транзакции.
type DBTX interface {
	View(fn func(state any))
	Update(fn func(state any))
}

// Store - бекенд юнита работы. Snapshot/Restore обеспечивают откат всех
// изменений при ошибке внутри Do: частично примененная операция снаружи не
// наблюдаема.
type Store interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
	State() any
	Snapshot() any
	Restore(snapshot any)
}

type UOW interface {
	Register(name RepositoryName, factory RepositoryFactory) error
	Do(ctx context.Context, fn func(ctx context.Context, tx TX) error) error
	GetRepository(name RepositoryName) (Repository, error)
}
