package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/iffertmedia/dashboard-backend/internal/model"
)

// Override is the durable snapshot of one campaign's admin-owned fields.
// Rows are keyed by campaign title because the sheet regenerates IDs on every
// fetch; title is the only identity that survives a refresh.
type Override struct {
	Title     string
	IsActive  bool
	MoreInfo  *model.MoreInfoOptions
	MoreNotes string
	UpdatedAt time.Time
}

type OverrideRepositoryInterface interface {
	Save(o Override) error
	ListAll() ([]Override, error)
	Delete(title string) error
}

type OverrideRepository struct {
	DB *sql.DB
}

func (r *OverrideRepository) Save(o Override) error {
	var moreInfo []byte
	if o.MoreInfo != nil {
		var err error
		moreInfo, err = json.Marshal(o.MoreInfo)
		if err != nil {
			return err
		}
	}

	query := `
        INSERT INTO campaign_overrides (title, is_active, more_info, more_notes, updated_at)
        VALUES ($1, $2, $3, $4, NOW())
        ON CONFLICT (title)
        DO UPDATE SET is_active=$2, more_info=$3, more_notes=$4, updated_at=NOW()
    `
	_, err := r.DB.Exec(query, o.Title, o.IsActive, moreInfo, o.MoreNotes)
	return err
}

func (r *OverrideRepository) ListAll() ([]Override, error) {
	query := `SELECT title, is_active, more_info, more_notes, updated_at FROM campaign_overrides`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := []Override{}
	for rows.Next() {
		var o Override
		var moreInfo []byte
		if err := rows.Scan(&o.Title, &o.IsActive, &moreInfo, &o.MoreNotes, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if len(moreInfo) > 0 {
			opts := &model.MoreInfoOptions{}
			if err := json.Unmarshal(moreInfo, opts); err == nil {
				o.MoreInfo = opts
			}
		}
		overrides = append(overrides, o)
	}
	return overrides, rows.Err()
}

func (r *OverrideRepository) Delete(title string) error {
	_, err := r.DB.Exec(`DELETE FROM campaign_overrides WHERE title=$1`, title)
	return err
}

var _ OverrideRepositoryInterface = (*OverrideRepository)(nil)
