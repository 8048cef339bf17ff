package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"piercing-service/internal/models"
	"piercing-service/utils"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type IPiercingRepository interface {
	GetPiercingsByClientID(ctx context.Context, clientID uuid.UUID) ([]models.PiercingRecord, error)
	// GetDownsizesDueBetween lists procedures whose downsize date falls in
	// [from, to).
	GetDownsizesDueBetween(ctx context.Context, from, to time.Time) ([]models.PiercingRecord, error)
}

type PiercingRepository struct {
	db *sqlx.DB
}

func NewPiercingRepository(db *sqlx.DB) IPiercingRepository {
	return &PiercingRepository{
		db: db,
	}
}

const insertPiercingQuery = `
	INSERT INTO piercings (
		record_id,
		client_id,
		piercing_type,
		category,
		price,
		date_pierced,
		downsize_due_date
	) VALUES (
		:record_id, :client_id, :piercing_type, :category, :price,
		:date_pierced, :downsize_due_date
	)
`

func insertPiercing(ctx context.Context, tx *sqlx.Tx, piercing *models.PiercingRecord) error {
	query, args, err := tx.BindNamed(insertPiercingQuery, piercing)
	if err != nil {
		return fmt.Errorf("failed to bind piercing insert: %w", err)
	}
	if err := utils.ExecWithCheck(ctx, tx, query, utils.ExecInsert, args...); err != nil {
		log.Printf("Error creating piercing record %s: %s", piercing.RecordID, err.Error())
		return fmt.Errorf("failed to create piercing record: %w", err)
	}
	return nil
}

func (r *PiercingRepository) GetPiercingsByClientID(ctx context.Context, clientID uuid.UUID) ([]models.PiercingRecord, error) {
	piercings := []models.PiercingRecord{}
	err := r.db.SelectContext(ctx, &piercings,
		"SELECT * FROM piercings WHERE client_id = $1 ORDER BY date_pierced DESC", clientID)
	if err != nil {
		log.Printf("Error fetching piercings for client %s: %v", clientID, err)
		return nil, fmt.Errorf("failed to get piercings: %w", err)
	}
	return piercings, nil
}

func (r *PiercingRepository) GetDownsizesDueBetween(ctx context.Context, from, to time.Time) ([]models.PiercingRecord, error) {
	piercings := []models.PiercingRecord{}
	err := r.db.SelectContext(ctx, &piercings, `
		SELECT * FROM piercings
		WHERE downsize_due_date >= $1 AND downsize_due_date < $2
		ORDER BY downsize_due_date`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get due downsizes: %w", err)
	}
	return piercings, nil
}
