package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jornada/internal/models"
)

// issueTable implements IssueTable on SQLite.
type issueTable struct {
	db *sql.DB
}

// NewIssueTable creates the issue table adapter.
func NewIssueTable(db *sql.DB) IssueTable {
	return &issueTable{db: db}
}

func (t *issueTable) Get(ctx context.Context, id string) (*models.Issue, error) {
	row := t.db.QueryRowContext(ctx,
		`SELECT id, title, description, step_id, release_id, labels, sort_order
		 FROM issues WHERE id = ?`,
		id,
	)
	issue, err := scanIssue(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("get issue", err)
	}
	return issue, nil
}

func (t *issueTable) GetAll(ctx context.Context) ([]*models.Issue, error) {
	rows, err := t.db.QueryContext(ctx,
		`SELECT id, title, description, step_id, release_id, labels, sort_order
		 FROM issues`,
	)
	if err != nil {
		return nil, storageError("load issues", err)
	}
	defer rows.Close()

	var issues []*models.Issue
	for rows.Next() {
		issue, err := scanIssue(rows)
		if err != nil {
			return nil, storageError("scan issue", err)
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("load issues", err)
	}
	return issues, nil
}

func (t *issueTable) Put(ctx context.Context, issue *models.Issue) error {
	labels, err := marshalLabels(issue.Labels)
	if err != nil {
		return fmt.Errorf("encode labels for issue %s: %w", issue.ID, err)
	}

	_, err = t.db.ExecContext(ctx,
		`INSERT INTO issues (id, title, description, step_id, release_id, labels, sort_order)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			step_id = excluded.step_id,
			release_id = excluded.release_id,
			labels = excluded.labels,
			sort_order = excluded.sort_order`,
		issue.ID, issue.Title, issue.Description,
		issue.StepID, issue.ReleaseID, labels, issue.Order,
	)
	if err != nil {
		return storageError("put issue", err)
	}
	return nil
}

func (t *issueTable) BulkPut(ctx context.Context, issues []*models.Issue) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("bulk put issues", err)
	}
	defer tx.Rollback()

	for _, issue := range issues {
		labels, err := marshalLabels(issue.Labels)
		if err != nil {
			return fmt.Errorf("encode labels for issue %s: %w", issue.ID, err)
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO issues (id, title, description, step_id, release_id, labels, sort_order)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				description = excluded.description,
				step_id = excluded.step_id,
				release_id = excluded.release_id,
				labels = excluded.labels,
				sort_order = excluded.sort_order`,
			issue.ID, issue.Title, issue.Description,
			issue.StepID, issue.ReleaseID, labels, issue.Order,
		)
		if err != nil {
			return storageError("bulk put issues", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("bulk put issues", err)
	}
	return nil
}

func (t *issueTable) Delete(ctx context.Context, id string) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM issues WHERE id = ?", id); err != nil {
		return storageError("delete issue", err)
	}
	return nil
}

func (t *issueTable) Clear(ctx context.Context) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM issues"); err != nil {
		return storageError("clear issues", err)
	}
	return nil
}

func (t *issueTable) Count(ctx context.Context) (int, error) {
	var count int
	err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM issues").Scan(&count)
	if err != nil {
		return 0, storageError("count issues", err)
	}
	return count, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanIssue(s scanner) (*models.Issue, error) {
	var (
		issue     models.Issue
		stepID    sql.NullString
		releaseID sql.NullString
		labels    sql.NullString
		order     sql.NullInt64
	)
	if err := s.Scan(
		&issue.ID, &issue.Title, &issue.Description,
		&stepID, &releaseID, &labels, &order,
	); err != nil {
		return nil, err
	}

	if stepID.Valid {
		issue.StepID = &stepID.String
	}
	if releaseID.Valid {
		issue.ReleaseID = &releaseID.String
	}
	if labels.Valid && labels.String != "" {
		if err := json.Unmarshal([]byte(labels.String), &issue.Labels); err != nil {
			return nil, err
		}
	}
	if order.Valid {
		v := int(order.Int64)
		issue.Order = &v
	}
	return &issue, nil
}

// marshalLabels encodes labels as a JSON array, or NULL when unset.
func marshalLabels(labels []string) (any, error) {
	if labels == nil {
		return nil, nil
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}
