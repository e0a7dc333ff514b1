package storage

// Repository is the key/value persistence adapter behind an accordion.
// Writes are whole-blob and last-write-wins; there are no transactions.
type Repository interface {
	// Get returns the blob stored under key. ok is false when nothing is stored.
	Get(key string) (blob []byte, ok bool, err error)

	// Set replaces the blob stored under key.
	Set(key string, blob []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
}
