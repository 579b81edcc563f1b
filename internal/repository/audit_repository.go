package repository

import (
	"database/sql"
	"time"
)

// AuditEntry is one recorded admin action or sync outcome, written by the
// event worker.
type AuditEntry struct {
	ID         int
	EventType  string
	CampaignID string
	Title      string
	Actor      string
	Detail     string
	OccurredAt time.Time
}

type AuditRepositoryInterface interface {
	Record(e AuditEntry) error
	ListRecent(limit int) ([]AuditEntry, error)
}

type AuditRepository struct {
	DB *sql.DB
}

func (r *AuditRepository) Record(e AuditEntry) error {
	query := `
        INSERT INTO audit_log (event_type, campaign_id, title, actor, detail, occurred_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `
	_, err := r.DB.Exec(query, e.EventType, e.CampaignID, e.Title, e.Actor, e.Detail, e.OccurredAt)
	return err
}

func (r *AuditRepository) ListRecent(limit int) ([]AuditEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT id, event_type, campaign_id, title, actor, detail, occurred_at
        FROM audit_log
        ORDER BY occurred_at DESC
        LIMIT $1
    `
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []AuditEntry{}
	for rows.Next() {
		var e AuditEntry
		if err := rows.Scan(&e.ID, &e.EventType, &e.CampaignID, &e.Title, &e.Actor, &e.Detail, &e.OccurredAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

var _ AuditRepositoryInterface = (*AuditRepository)(nil)
