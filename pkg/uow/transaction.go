package uow

type Transaction struct {
	repositories map[RepositoryName]RepositoryFactory
	store        Store
}

func NewTransaction(store Store, repositories map[RepositoryName]RepositoryFactory) *Transaction {
	return &Transaction{
		repositories: repositories,
		store:        store,
	}
}

// Get возвращает репозиторий или ошибку ErrRepositoryNotRegistered.
func (t *Transaction) Get(name RepositoryName) (Repository, error) {
	if repo, ok := t.repositories[name]; ok {
		return repo(&lockedAccess{store: t.store}), nil
	}
	return nil, ErrRepositoryNotRegistered
}

// GetAs возвращает зарегистрированный репозиторий с именем name приведенный к типу T
// или ошибки ErrRepositoryNotRegistered в случае не найденного репозитория с указанным name, ErrInvalidRepositoryType.
func GetAs[T any](t TX, name RepositoryName) (T, error) {
	repo, err := t.Get(name)
	var res T
	if err != nil {
		return res, err //nolint:wrapcheck
	}
	res, ok := repo.(T)
	if !ok {
		return res, ErrInvalidRepositoryType
	}
	return res, nil
}

// sharedAccess используется вне Do: сериализует каждый вызов через блокировки
// хранилища. Читатели видят целостное (хоть, возможно, и чуть устаревшее)
// состояние.
type sharedAccess struct {
	store Store
}

func (s *sharedAccess) View(fn func(state any)) {
	s.store.RLock()
	defer s.store.RUnlock()
	fn(s.store.State())
}

func (s *sharedAccess) Update(fn func(state any)) {
	s.store.Lock()
	defer s.store.Unlock()
	fn(s.store.State())
}

// lockedAccess используется внутри Do: блокировка уже взята юнитом работы.
type lockedAccess struct {
	store Store
}

func (l *lockedAccess) View(fn func(state any)) {
	fn(l.store.State())
}

func (l *lockedAccess) Update(fn func(state any)) {
	fn(l.store.State())
}
