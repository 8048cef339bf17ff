package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"piercing-service/internal/event"
	"piercing-service/internal/models"

	"github.com/google/uuid"
)

// ============================================================================
// TEST FAKES
// ============================================================================

type fakeClientRepo struct {
	mu        sync.Mutex
	clients   map[uuid.UUID]models.ClientRecord
	piercings []models.PiercingRecord
	createErr error
	findErr   error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[uuid.UUID]models.ClientRecord{}}
}

func (f *fakeClientRepo) CreateClientWithPiercing(_ context.Context, client *models.ClientRecord, piercing *models.PiercingRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.clients[client.ClientID] = *client
	f.piercings = append(f.piercings, *piercing)
	return nil
}

func (f *fakeClientRepo) GetClientByID(_ context.Context, clientID uuid.UUID) (*models.ClientRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	client, ok := f.clients[clientID]
	if !ok {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (f *fakeClientRepo) FindClientsByName(_ context.Context, firstName, lastName string) ([]models.ClientRecord, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []models.ClientRecord
	for _, c := range f.clients {
		if c.FirstName == firstName && c.LastName == lastName {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakePiercingRepo struct {
	byClient map[uuid.UUID][]models.PiercingRecord
	due      []models.PiercingRecord
	dueErr   error
	from, to time.Time
}

func (f *fakePiercingRepo) GetPiercingsByClientID(_ context.Context, clientID uuid.UUID) ([]models.PiercingRecord, error) {
	return f.byClient[clientID], nil
}

func (f *fakePiercingRepo) GetDownsizesDueBetween(_ context.Context, from, to time.Time) ([]models.PiercingRecord, error) {
	f.from, f.to = from, to
	return f.due, f.dueErr
}

type storedDocument struct {
	bucket, object, document string
}

type fakeDocumentStore struct {
	stored  []storedDocument
	removed []storedDocument
	err     error
	// failOn makes the n-th store call fail, counting from 1
	failOn int
	calls  int
}

func (f *fakeDocumentStore) StoreDocument(_ context.Context, bucketName, objectName, document string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.calls == f.failOn {
		return "", errBoom
	}
	f.stored = append(f.stored, storedDocument{bucketName, objectName, document})
	return "minio://" + bucketName + "/" + objectName, nil
}

func (f *fakeDocumentStore) RemoveDocument(_ context.Context, bucketName, objectName string) error {
	for i, doc := range f.stored {
		if doc.bucket == bucketName && doc.object == objectName {
			f.removed = append(f.removed, doc)
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return errors.New("no such object")
}

type fakePublisher struct {
	events []event.PiercingEvent
	err    error
}

func (f *fakePublisher) PublishEvent(_ context.Context, evt event.PiercingEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, evt)
	return nil
}

type sentSMS struct {
	phone, message string
}

type fakeSender struct {
	sent []sentSMS
	err  error
}

func (f *fakeSender) SendSMS(_ context.Context, phoneNumber, message string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentSMS{phoneNumber, message})
	return nil
}

type fakeReminderRepo struct {
	marked  map[string]bool
	cleared int
	err     error
}

func newFakeReminderRepo() *fakeReminderRepo {
	return &fakeReminderRepo{marked: map[string]bool{}}
}

func (f *fakeReminderRepo) MarkReminderSent(_ context.Context, phoneNumber, piercingType, dueDate string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	key := phoneNumber + "|" + piercingType + "|" + dueDate
	if f.marked[key] {
		return false, nil
	}
	f.marked[key] = true
	return true, nil
}

func (f *fakeReminderRepo) ClearReminder(_ context.Context, phoneNumber, piercingType, dueDate string) error {
	f.cleared++
	delete(f.marked, phoneNumber+"|"+piercingType+"|"+dueDate)
	return nil
}

var errBoom = errors.New("boom")
