package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"piercing-service/internal/models"
	"piercing-service/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("not found")

type IClientRepository interface {
	// CreateClientWithPiercing writes both records of a release form in one
	// transaction.
	CreateClientWithPiercing(ctx context.Context, client *models.ClientRecord, piercing *models.PiercingRecord) error
	GetClientByID(ctx context.Context, clientID uuid.UUID) (*models.ClientRecord, error)
	FindClientsByName(ctx context.Context, firstName, lastName string) ([]models.ClientRecord, error)
}

type ClientRepository struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) IClientRepository {
	return &ClientRepository{
		db: db,
	}
}

const insertClientQuery = `
	INSERT INTO clients (
		client_id,
		first_name,
		last_name,
		email,
		phone,
		date_of_birth,
		piercing_type,
		jewelry_choice,
		is_minor,
		parent_first_name,
		parent_last_name,
		parent_email,
		parent_phone,
		signature_url,
		id_photo_url,
		parent_signature_url,
		parent_id_photo_url,
		agreed_terms,
		created_at
	) VALUES (
		:client_id, :first_name, :last_name, :email, :phone, :date_of_birth,
		:piercing_type, :jewelry_choice, :is_minor, :parent_first_name,
		:parent_last_name, :parent_email, :parent_phone, :signature_url,
		:id_photo_url, :parent_signature_url, :parent_id_photo_url,
		:agreed_terms, :created_at
	)
`

func (r *ClientRepository) CreateClientWithPiercing(ctx context.Context, client *models.ClientRecord, piercing *models.PiercingRecord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query, args, err := tx.BindNamed(insertClientQuery, client)
	if err != nil {
		return fmt.Errorf("failed to bind client insert: %w", err)
	}
	if err := utils.ExecWithCheck(ctx, tx, query, utils.ExecInsert, args...); err != nil {
		log.Printf("Error creating client %s: %s", client.ClientID, err.Error())
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := insertPiercing(ctx, tx, piercing); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit release form: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetClientByID(ctx context.Context, clientID uuid.UUID) (*models.ClientRecord, error) {
	var client models.ClientRecord
	err := r.db.GetContext(ctx, &client, "SELECT * FROM clients WHERE client_id = $1", clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %s: %w", clientID, ErrNotFound)
	}
	if err != nil {
		log.Printf("Error fetching client by id %s: %v", clientID, err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// FindClientsByName matches first and last name case-insensitively, newest
// first.
func (r *ClientRepository) FindClientsByName(ctx context.Context, firstName, lastName string) ([]models.ClientRecord, error) {
	clients := []models.ClientRecord{}
	err := r.db.SelectContext(ctx, &clients, `
		SELECT * FROM clients
		WHERE LOWER(first_name) = LOWER($1) AND LOWER(last_name) = LOWER($2)
		ORDER BY created_at DESC`,
		firstName, lastName)
	if err != nil {
		log.Printf("Error looking up clients %s %s: %v", firstName, lastName, err)
		return nil, fmt.Errorf("failed to look up clients: %w", err)
	}
	return clients, nil
}
