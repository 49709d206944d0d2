package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-flatnav/models"
)

//go:generate mockgen -source=server_interfaces.go -destination=../mock/server_store_mock.go -package=mock

// BlobRepository stores raw JSON documents of the key-value proxy.
type BlobRepository interface {
	GetBlob(ctx context.Context, key string) (models.Blob, error)
	PutBlob(ctx context.Context, key string, value json.RawMessage) error
	Ping(ctx context.Context) error
}
