package store

// Blob keys for the three independently persisted collections.
const (
	KeyTransactions = "transactions"
	KeyCategories   = "categories"
	KeyBudgets      = "budgets"
)

// Blobs is the persistence port: three independently keyed JSON blobs,
// read and written wholesale on every access. Backends must make Save
// durable before returning so that readers always see the latest state.
type Blobs interface {
	// Load returns the blob for key. found is false when the key has never
	// been written, which is distinct from an empty blob.
	Load(key string) (data []byte, found bool, err error)
	// Save replaces the blob for key.
	Save(key string, data []byte) error
}
