package store

// Repository is the key-value surface the session layer persists to.
type Repository interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(keys ...string) error
	Keys() ([]string, error)

	// ExecTx runs fn against a transactional view of the repository.
	ExecTx(fn func(Repository) error) error

	Close() error
}
