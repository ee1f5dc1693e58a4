package repository

// CacheRepository is the injected key/value port. The computation core
// never touches it directly; services use it for drafts and share codes.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	List(prefix string) ([]string, error)
	Delete(key string) error
}
