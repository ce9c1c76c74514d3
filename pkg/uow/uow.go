package uow

import (
	"context"
)

type RepositoryName string
type Repository any
type RepositoryFactory func(DBTX) Repository

type UnitOfWork struct {
	store        Store
	repositories map[RepositoryName]RepositoryFactory
}

func NewUnitOfWork(store Store) *UnitOfWork {
	return &UnitOfWork{
		store:        store,
		repositories: make(map[RepositoryName]RepositoryFactory),
	}
}

// Register регистрирует репозиторий у себя в мапе. Если репозиторий уже зарегистрирован, возвращает
// ошибку ErrRepositoryAlreadyRegistered.
func (u *UnitOfWork) Register(name RepositoryName, factory RepositoryFactory) error {
	if _, ok := u.repositories[name]; ok {
		return ErrRepositoryAlreadyRegistered
	}
	u.repositories[name] = factory
	return nil
}

// Do выполняет функцию fn внутри транзакции. На время fn берется эксклюзивная
// блокировка хранилища (single writer), при ошибке состояние откатывается к
// снапшоту, взятому на входе.
func (u *UnitOfWork) Do(ctx context.Context, fn func(context.Context, TX) error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr //nolint:wrapcheck
	}

	u.store.Lock()
	defer u.store.Unlock()

	snapshot := u.store.Snapshot()

	if transErr := fn(ctx, NewTransaction(u.store, u.repositories)); transErr != nil {
		u.store.Restore(snapshot)
		return transErr
	}
	return nil
}

// GetRepository возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
// Репозиторий работает вне транзакции: каждый его вызов берет блокировку
// хранилища самостоятельно.
func (u *UnitOfWork) GetRepository(name RepositoryName) (Repository, error) {
	if repoFactory, ok := u.repositories[name]; ok {
		return repoFactory(&sharedAccess{store: u.store}), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetRepositoryAs возвращает репозиторий по имени name и приводит его к типу T. Возвращает ошибки
// ErrRepositoryNotRegistered и ErrInvalidRepositoryType.
func GetRepositoryAs[T any](u UOW, name RepositoryName) (T, error) {
	var res T
	repo, err := u.GetRepository(name)
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	r, ok := repo.(T)

	if !ok {
		return res, ErrInvalidRepositoryType
	}

	return r, nil
}
