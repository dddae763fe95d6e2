package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/diegoclair/escala-bot/internal/domain/contract"
	"github.com/diegoclair/escala-bot/internal/domain/entity"
)

type rosterRepository struct {
	db dbConn
}

func newRosterRepo(db dbConn) contract.RosterRepo {
	return &rosterRepository{db: db}
}

const rosterColumns = `id, slack_channel_id, name, sunday_rotation, vendor_rotation, created_at, updated_at`

func (r *rosterRepository) Create(roster *entity.Roster) error {
	query := `
		INSERT INTO rosters (slack_channel_id, name, sunday_rotation, vendor_rotation)
		VALUES (?, ?, ?, ?)
	`

	sundayJSON, vendorJSON, err := marshalRotations(roster)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(query,
		roster.SlackChannelID,
		roster.Name,
		sundayJSON,
		vendorJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create roster: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	roster.ID = id
	return nil
}

func (r *rosterRepository) GetBySlackChannelID(slackChannelID string) (*entity.Roster, error) {
	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE slack_channel_id = ?`
	return scanRoster(r.db.QueryRow(query, slackChannelID))
}

func (r *rosterRepository) GetByID(id int64) (*entity.Roster, error) {
	query := `SELECT ` + rosterColumns + ` FROM rosters WHERE id = ?`
	return scanRoster(r.db.QueryRow(query, id))
}

func (r *rosterRepository) Update(roster *entity.Roster) error {
	query := `
		UPDATE rosters SET
			name = ?,
			sunday_rotation = ?,
			vendor_rotation = ?,
			updated_at = ?
		WHERE id = ?
	`

	sundayJSON, vendorJSON, err := marshalRotations(roster)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(query,
		roster.Name,
		sundayJSON,
		vendorJSON,
		time.Now(),
		roster.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update roster: %w", err)
	}

	return nil
}

func scanRoster(row *sql.Row) (*entity.Roster, error) {
	roster := &entity.Roster{}
	var sundayJSON, vendorJSON string

	err := row.Scan(
		&roster.ID,
		&roster.SlackChannelID,
		&roster.Name,
		&sundayJSON,
		&vendorJSON,
		&roster.CreatedAt,
		&roster.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	// Convert JSON to rotation groups
	if err := json.Unmarshal([]byte(sundayJSON), &roster.SundayRotation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sunday rotation: %w", err)
	}
	if err := json.Unmarshal([]byte(vendorJSON), &roster.VendorRotation); err != nil {
		return nil, fmt.Errorf("failed to unmarshal vendor rotation: %w", err)
	}

	return roster, nil
}

func marshalRotations(roster *entity.Roster) (string, string, error) {
	sunday := roster.SundayRotation
	if sunday == nil {
		sunday = [][]string{}
	}
	vendor := roster.VendorRotation
	if vendor == nil {
		vendor = [][]string{}
	}

	sundayJSON, err := json.Marshal(sunday)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal sunday rotation: %w", err)
	}
	vendorJSON, err := json.Marshal(vendor)
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal vendor rotation: %w", err)
	}

	return string(sundayJSON), string(vendorJSON), nil
}
