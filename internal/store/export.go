package store

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/rcliao/aiplayland-journey/internal/model"
)

// ExportAll returns every visitor record ordered by visitor id.
func (s *SQLiteStore) ExportAll(ctx context.Context) ([]model.VisitorRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT visitor_id, record, updated_at FROM visitor_memory
		 WHERE storage_key = ? ORDER BY visitor_id`, model.StorageKey)
	if err != nil {
		return nil, goerr.Wrap(err, "export visitor memory")
	}
	defer rows.Close()

	var records []model.VisitorRecord
	for rows.Next() {
		var rec model.VisitorRecord
		var raw string
		if err := rows.Scan(&rec.VisitorID, &raw, &rec.UpdatedAt); err != nil {
			return nil, goerr.Wrap(err, "scan visitor memory")
		}
		rec.Memory = Decode([]byte(raw))
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Import stores records from an export, overwriting existing visitors.
// Records without a visitor id are skipped.
func (s *SQLiteStore) Import(ctx context.Context, records []model.VisitorRecord) (int, error) {
	imported := 0
	for _, rec := range records {
		if rec.VisitorID == "" {
			continue
		}
		b, err := Encode(rec.Memory)
		if err != nil {
			return imported, goerr.Wrap(err, "encode memory record", goerr.V("visitor", rec.VisitorID))
		}
		ts := time.Now().UTC()
		if t, err := time.Parse(time.RFC3339, rec.UpdatedAt); err == nil {
			ts = t
		}
		if err := s.saveRaw(ctx, rec.VisitorID, string(b), ts); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}
