package database

import (
	"context"
	"database/sql"

	"jornada/internal/models"
)

// releaseTable implements ReleaseTable on SQLite.
type releaseTable struct {
	db *sql.DB
}

// NewReleaseTable creates the release table adapter.
func NewReleaseTable(db *sql.DB) ReleaseTable {
	return &releaseTable{db: db}
}

func (t *releaseTable) Get(ctx context.Context, id string) (*models.Release, error) {
	var release models.Release
	err := t.db.QueryRowContext(ctx,
		"SELECT id, name, description FROM releases WHERE id = ?",
		id,
	).Scan(&release.ID, &release.Name, &release.Description)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageError("get release", err)
	}
	return &release, nil
}

func (t *releaseTable) GetAll(ctx context.Context) ([]*models.Release, error) {
	rows, err := t.db.QueryContext(ctx, "SELECT id, name, description FROM releases")
	if err != nil {
		return nil, storageError("load releases", err)
	}
	defer rows.Close()

	var releases []*models.Release
	for rows.Next() {
		var release models.Release
		if err := rows.Scan(&release.ID, &release.Name, &release.Description); err != nil {
			return nil, storageError("scan release", err)
		}
		releases = append(releases, &release)
	}
	if err := rows.Err(); err != nil {
		return nil, storageError("load releases", err)
	}
	return releases, nil
}

func (t *releaseTable) Put(ctx context.Context, release *models.Release) error {
	_, err := t.db.ExecContext(ctx,
		`INSERT INTO releases (id, name, description)
		 VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			description = excluded.description`,
		release.ID, release.Name, release.Description,
	)
	if err != nil {
		return storageError("put release", err)
	}
	return nil
}

func (t *releaseTable) BulkPut(ctx context.Context, releases []*models.Release) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return storageError("bulk put releases", err)
	}
	defer tx.Rollback()

	for _, release := range releases {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO releases (id, name, description)
			 VALUES (?, ?, ?)
			 ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				description = excluded.description`,
			release.ID, release.Name, release.Description,
		)
		if err != nil {
			return storageError("bulk put releases", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageError("bulk put releases", err)
	}
	return nil
}

func (t *releaseTable) Delete(ctx context.Context, id string) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM releases WHERE id = ?", id); err != nil {
		return storageError("delete release", err)
	}
	return nil
}

func (t *releaseTable) Clear(ctx context.Context) error {
	if _, err := t.db.ExecContext(ctx, "DELETE FROM releases"); err != nil {
		return storageError("clear releases", err)
	}
	return nil
}

func (t *releaseTable) Count(ctx context.Context) (int, error) {
	var count int
	err := t.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM releases").Scan(&count)
	if err != nil {
		return 0, storageError("count releases", err)
	}
	return count, nil
}
