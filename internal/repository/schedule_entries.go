package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/db-agama/kajian-manager/internal/domain"
	"github.com/jmoiron/sqlx"
)

const scheduleEntryColumns = `id, topic, speaker, venue, "date", "time"`

func (r *Repository) CreateScheduleEntry(entry *domain.ScheduleEntry) error {
	query := `
		INSERT INTO schedule_entries (topic, speaker, venue, "date", "time")
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`

	err := r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		args := []any{entry.Topic, entry.Speaker, entry.Venue, entry.Date.String(), entry.Time.String()}
		return tx.QueryRowxContext(ctx, tx.Rebind(query), args...).Scan(&entry.ID)
	})

	return storeError("menambah kajian", err)
}

// GetAllScheduleEntries mengembalikan semua jadwal urut berdasarkan tanggal lalu waktu.
func (r *Repository) GetAllScheduleEntries() ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleEntryColumns + `
		FROM schedule_entries
		ORDER BY "date", "time", id
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	entries := make([]*domain.ScheduleEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, storeError("mengambil daftar kajian", err)
	}

	return entries, nil
}

// SearchScheduleEntries mencari jadwal yang tema, ustadz, atau tempatnya
// mengandung term (tanpa membedakan huruf besar/kecil).
func (r *Repository) SearchScheduleEntries(term string) ([]*domain.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleEntryColumns + `
		FROM schedule_entries
		WHERE LOWER(topic) LIKE LOWER(?) ESCAPE '\'
		   OR LOWER(speaker) LIKE LOWER(?) ESCAPE '\'
		   OR LOWER(venue) LIKE LOWER(?) ESCAPE '\'
		ORDER BY "date", "time", id
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	pattern := "%" + escapeLike(term) + "%"

	entries := make([]*domain.ScheduleEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, r.db.Rebind(query), pattern, pattern, pattern); err != nil {
		return nil, storeError("mencari kajian", err)
	}

	return entries, nil
}

func (r *Repository) GetScheduleEntryByID(id int64) (*domain.ScheduleEntry, error) {
	query := `
		SELECT ` + scheduleEntryColumns + `
		FROM schedule_entries WHERE id = ?
	`

	ctx, cancel := context.WithTimeout(context.Background(), r.queryTimeout())
	defer cancel()

	entry := &domain.ScheduleEntry{}
	if err := r.db.GetContext(ctx, entry, r.db.Rebind(query), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError("mengambil kajian", err)
	}

	return entry, nil
}

func (r *Repository) UpdateScheduleEntry(entry *domain.ScheduleEntry) error {
	query := `
		UPDATE schedule_entries
		SET topic = ?, speaker = ?, venue = ?, "date" = ?, "time" = ?
		WHERE id = ?
	`

	err := r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		args := []any{entry.Topic, entry.Speaker, entry.Venue, entry.Date.String(), entry.Time.String(), entry.ID}
		res, err := tx.ExecContext(ctx, tx.Rebind(query), args...)
		if err != nil {
			return err
		}
		return checkAffected(res.RowsAffected())
	})

	return storeError("mengubah kajian", err)
}

func (r *Repository) DeleteScheduleEntry(id int64) error {
	query := `
		DELETE FROM schedule_entries WHERE id = ?
	`

	err := r.withTx(func(ctx context.Context, tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, tx.Rebind(query), id)
		if err != nil {
			return err
		}
		return checkAffected(res.RowsAffected())
	})

	return storeError("menghapus kajian", err)
}
