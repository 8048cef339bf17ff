package services

import (
	"context"
	"fmt"
	"strings"

	"piercing-service/internal/models"
	"piercing-service/internal/repository"

	"github.com/google/uuid"
)

type IClientService interface {
	LookupClients(ctx context.Context, req *models.ClientLookupRequest) ([]models.ClientRecord, error)
	GetClientPiercings(ctx context.Context, rawClientID string) ([]models.PiercingRecord, error)
}

type ClientService struct {
	clients   repository.IClientRepository
	piercings repository.IPiercingRepository
}

func NewClientService(clients repository.IClientRepository, piercings repository.IPiercingRepository) *ClientService {
	return &ClientService{
		clients:   clients,
		piercings: piercings,
	}
}

func (s *ClientService) LookupClients(ctx context.Context, req *models.ClientLookupRequest) ([]models.ClientRecord, error) {
	firstName := strings.TrimSpace(req.FirstName)
	lastName := strings.TrimSpace(req.LastName)

	var errs ValidationErrors
	if firstName == "" {
		errs.add("first_name", "required")
	}
	if lastName == "" {
		errs.add("last_name", "required")
	}
	if err := errs.orNil(); err != nil {
		return nil, err
	}

	return s.clients.FindClientsByName(ctx, firstName, lastName)
}

func (s *ClientService) GetClientPiercings(ctx context.Context, rawClientID string) ([]models.PiercingRecord, error) {
	clientID, err := uuid.Parse(rawClientID)
	if err != nil {
		return nil, ValidationErrors{{Field: "client_id", Message: "must be a UUID"}}
	}

	if _, err := s.clients.GetClientByID(ctx, clientID); err != nil {
		return nil, err
	}

	piercings, err := s.piercings.GetPiercingsByClientID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to load piercings: %w", err)
	}
	return piercings, nil
}
