package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
)

type publisherRepository struct {
	db dbConn
}

func newPublisherRepo(db dbConn) contract.PublisherRepo {
	return &publisherRepository{db: db}
}

const publisherColumns = `id, roster_id, publish_day, publish_time, is_enabled, created_at, updated_at`

func (r *publisherRepository) Create(publisher *entity.Publisher) error {
	query := `
		INSERT INTO publishers (roster_id, publish_day, publish_time, is_enabled)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		publisher.RosterID,
		publisher.PublishDay,
		publisher.PublishTime,
		publisher.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create publisher: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	publisher.ID = id
	return nil
}

func (r *publisherRepository) GetByRosterID(rosterID int64) (*entity.Publisher, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers WHERE roster_id = ?`

	publisher, err := scanPublisher(r.db.QueryRow(query, rosterID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get publisher: %w", err)
	}

	return publisher, nil
}

func (r *publisherRepository) Update(publisher *entity.Publisher) error {
	query := `
		UPDATE publishers SET
			publish_day = ?,
			publish_time = ?,
			is_enabled = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		publisher.PublishDay,
		publisher.PublishTime,
		publisher.IsEnabled,
		time.Now(),
		publisher.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update publisher: %w", err)
	}

	return nil
}

func (r *publisherRepository) GetEnabled() ([]*entity.Publisher, error) {
	query := `SELECT ` + publisherColumns + ` FROM publishers WHERE is_enabled = 1`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled publishers: %w", err)
	}
	defer rows.Close()

	var publishers []*entity.Publisher
	for rows.Next() {
		publisher, err := scanPublisher(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan publisher: %w", err)
		}
		publishers = append(publishers, publisher)
	}

	return publishers, rows.Err()
}

func (r *publisherRepository) SetEnabled(rosterID int64, enabled bool) error {
	query := `UPDATE publishers SET is_enabled = ?, updated_at = ? WHERE roster_id = ?`

	result, err := r.db.Exec(query, enabled, time.Now(), rosterID)
	if err != nil {
		return fmt.Errorf("failed to set publisher enabled: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("publisher not found for roster %d", rosterID)
	}

	return nil
}

func scanPublisher(row scanner) (*entity.Publisher, error) {
	publisher := &entity.Publisher{}
	err := row.Scan(
		&publisher.ID,
		&publisher.RosterID,
		&publisher.PublishDay,
		&publisher.PublishTime,
		&publisher.IsEnabled,
		&publisher.CreatedAt,
		&publisher.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return publisher, nil
}
