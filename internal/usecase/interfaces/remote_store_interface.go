package interfaces

import "context"

// Collections mirrored to the remote document store.
const (
	CollectionQuotes = "quotes"
	CollectionLeads  = "leads"
)

// IRemoteStore abstracts the cloud document store (DynamoDB in production).
//
// The core never depends on the store's wire format, only on these four
// operations being eventually consistent and idempotent under retry:
//   - Create mints a new document id
//   - UpsertMerge merges a partial document into an existing one
//   - Query filters a collection by a single field
type IRemoteStore interface {
	Create(ctx context.Context, collection string, doc map[string]any) (string, error)
	Get(ctx context.Context, collection, id string) (map[string]any, error)
	Query(ctx context.Context, collection, field string, value any) ([]map[string]any, error)
	UpsertMerge(ctx context.Context, collection, id string, partial map[string]any) error
}

// ISnapshotStore is the local durable store: a single key holds the entire
// serialized application state. Load returns nil with no error when the key
// has never been written.
type ISnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
