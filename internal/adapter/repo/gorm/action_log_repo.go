package gormrepo

import (
	"context"
	"time"

	"github.com/r3lic-pnw/craftagent/internal/app/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type actionRecordRow struct {
	ID         string `gorm:"primaryKey;size:36"`
	Text       string
	Kind       string `gorm:"index"`
	Status     string
	Message    string
	Error      string
	DurationMS int64
	CreatedAt  time.Time `gorm:"index"`
}

func (actionRecordRow) TableName() string { return "action_records" }

type ActionLogRepo struct {
	db *gorm.DB
}

func NewActionLogRepo(db *gorm.DB) ActionLogRepo {
	return ActionLogRepo{db: db}
}

// Migrate creates or updates the action_records table.
func (r ActionLogRepo) Migrate() error {
	return r.db.AutoMigrate(&actionRecordRow{})
}

func (r ActionLogRepo) Append(ctx context.Context, rec ports.ActionRecord) error {
	row := actionRecordRow{
		ID:         rec.ID,
		Text:       rec.Text,
		Kind:       rec.Kind,
		Status:     rec.Status,
		Message:    rec.Message,
		Error:      rec.Error,
		DurationMS: rec.DurationMS,
		CreatedAt:  rec.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r ActionLogRepo) Recent(ctx context.Context, limit int) ([]ports.ActionRecord, error) {
	rows := []actionRecordRow{}
	query := r.db.WithContext(ctx).Clauses(clause.OrderBy{
		Columns: []clause.OrderByColumn{{Column: clause.Column{Name: "created_at"}, Desc: true}},
	})
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]ports.ActionRecord, 0, len(rows))
	for _, row := range rows {
		out = append(out, ports.ActionRecord{
			ID:         row.ID,
			Text:       row.Text,
			Kind:       row.Kind,
			Status:     row.Status,
			Message:    row.Message,
			Error:      row.Error,
			DurationMS: row.DurationMS,
			CreatedAt:  row.CreatedAt,
		})
	}
	return out, nil
}
