package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jornada/internal/models"
)

// journeyTable implements JourneyTable on SQLite. A journey row carries
// its steps inline as JSON: steps are composed into their journey and
// are never addressed as rows of their own.
type journeyTable struct {
	db *sql.DB
}

// NewJourneyTable creates the journey table adapter.
func NewJourneyTable(db *sql.DB) JourneyTable {
	return &journeyTable{db: db}
}

func (t *journeyTable) Get(ctx context.Context, id string) (*models.Journey, error) {
	row := t.db.QueryRowContext(ctx,
		"SELECT id, name, steps, sort_order FROM journeys WHERE id = ?",
		id,
	)
	journey, err := scanJourney(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("get journey", err)
	}
	return journey, nil
}

func (t *journeyTable) GetAll(ctx context.Context) ([]*models.Journey, error) {
	rows, err := t.db.QueryContext(ctx, "SELECT id, name, steps, sort_order FROM journeys")
	if err != nil {
		return nil, storageError("load journeys", err)
	}
	defer rows.Close()

	var journeys []*models.Journey
	for rows.Next() {
		journey, err := scanJourney(rows)
		if err != nil {
			return nil, storageError("scan journey", err)
		}
		journeys = append(journeys, journey)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("load journeys", err)
	}
	return journeys, nil
}

func (t *journeyTable) Put(ctx context.Context, journey *models.Journey) error {
	steps, err := marshalSteps(journey.Steps)
	if err != nil {
		return fmt.Errorf("encode steps for journey %s: %w", journey.ID, err)
	}

	_, err = t.db.ExecContext(ctx,
		`INSERT INTO journeys (id, name, steps, sort_order)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			steps = excluded.steps,
			sort_order = excluded.sort_order`,
		journey.ID, journey.Name, steps, journey.Order,
	)
	if err != nil {
		return storageError("put journey", err)
	}
	return nil
}

func (t *journeyTable) BulkPut(ctx context.Context, journeys []*models.Journey) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("bulk put journeys", err)
	}
	defer tx.Rollback()

	for _, journey := range journeys {
		steps, err := marshalSteps(journey.Steps)
		if err != nil {
			return fmt.Errorf("encode steps for journey %s: %w", journey.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO journeys (id, name, steps, sort_order)
			 VALUES (?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				steps = excluded.steps,
				sort_order = excluded.sort_order`,
			journey.ID, journey.Name, steps, journey.Order,
		)
		if err != nil {
			return storageError("bulk put journeys", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("bulk put journeys", err)
	}
	return nil
}

func (t *journeyTable) Delete(ctx context.Context, id string) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM journeys WHERE id = ?", id); err != nil {
		return storageError("delete journey", err)
	}
	return nil
}

func (t *journeyTable) Clear(ctx context.Context) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM journeys"); err != nil {
		return storageError("clear journeys", err)
	}
	return nil
}

func (t *journeyTable) Count(ctx context.Context) (int, error) {
	var count int
	err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM journeys").Scan(&count)
	if err != nil {
		return 0, storageError("count journeys", err)
	}
	return count, nil
}

func scanJourney(s scanner) (*models.Journey, error) {
	var (
		journey models.Journey
		steps   string
		order   sql.NullInt64
	)
	if err := s.Scan(&journey.ID, &journey.Name, &steps, &order); err != nil {
		return nil, err
	}

	if steps != "" {
		if err := json.Unmarshal([]byte(steps), &journey.Steps); err != nil {
			return nil, err
		}
	}
	if order.Valid {
		v := int(order.Int64)
		journey.Order = &v
	}
	return &journey, nil
}

func marshalSteps(steps []models.Step) (string, error) {
	if steps == nil {
		return "[]", nil
	}
	data, err := json.Marshal(steps)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
