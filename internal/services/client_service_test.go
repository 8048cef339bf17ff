package services

import (
	"context"
	"testing"

	"piercing-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupClients(t *testing.T) {
	clients := newFakeClientRepo()
	id := uuid.New()
	clients.clients[id] = models.ClientRecord{ClientID: id, FirstName: "Jordan", LastName: "Reyes"}
	svc := NewClientService(clients, &fakePiercingRepo{})

	found, err := svc.LookupClients(context.Background(), &models.ClientLookupRequest{FirstName: " Jordan", LastName: "Reyes "})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, id, found[0].ClientID)
}

func TestLookupClients_BlankNames(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), &fakePiercingRepo{})

	_, err := svc.LookupClients(context.Background(), &models.ClientLookupRequest{FirstName: "  ", LastName: ""})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetClientPiercings(t *testing.T) {
	clients := newFakeClientRepo()
	id := uuid.New()
	clients.clients[id] = models.ClientRecord{ClientID: id}
	piercings := &fakePiercingRepo{byClient: map[uuid.UUID][]models.PiercingRecord{
		id: {{RecordID: uuid.New(), ClientID: id, PiercingType: "rook"}},
	}}
	svc := NewClientService(clients, piercings)

	got, err := svc.GetClientPiercings(context.Background(), id.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rook", got[0].PiercingType)
}

func TestGetClientPiercings_Errors(t *testing.T) {
	svc := NewClientService(newFakeClientRepo(), &fakePiercingRepo{})

	_, err := svc.GetClientPiercings(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.GetClientPiercings(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}
