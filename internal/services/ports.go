package services

import (
	"context"

	"piercing-service/internal/event"
)

// DocumentStore persists the signature and ID images of a release form and
// returns a reference to store with the client record.
type DocumentStore interface {
	StoreDocument(ctx context.Context, bucketName, objectName, document string) (string, error)
	RemoveDocument(ctx context.Context, bucketName, objectName string) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event event.PiercingEvent) error
}

// InlineDocumentStore keeps documents in the database row itself. Used when
// object storage is unavailable.
type InlineDocumentStore struct{}

func (InlineDocumentStore) StoreDocument(_ context.Context, _, _, document string) (string, error) {
	return document, nil
}

func (InlineDocumentStore) RemoveDocument(context.Context, string, string) error {
	return nil
}
