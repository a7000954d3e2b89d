package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LabelRepository persists label assignments of remote entities. Labels are
// created on first use and shared between entities.
type LabelRepository struct {
	pool *pgxpool.Pool
}

// NewLabelRepository constructs a new LabelRepository with the given pool.
func NewLabelRepository(pool *pgxpool.Pool) *LabelRepository {
	return &LabelRepository{pool: pool}
}

type entityLabel struct {
	EntityID string
	Name     string
}

// LabelsFor returns label names keyed by entity id. Entities without labels
// are absent from the map.
func (r *LabelRepository) LabelsFor(ctx context.Context, entityIDs []string) (map[string][]string, error) {
	if len(entityIDs) == 0 {
		return map[string][]string{}, nil
	}

	rows, err := r.pool.Query(ctx, `
SELECT el.entity_id, l.name
FROM entity_labels el
JOIN labels l ON l.id = el.label_id
WHERE el.entity_id = ANY($1)
ORDER BY el.entity_id, l.name`, entityIDs)
	if err != nil {
		return nil, err
	}

	pairs, err := pgx.CollectRows(rows, pgx.RowToStructByPos[entityLabel])
	if err != nil {
		return nil, err
	}

	out := make(map[string][]string, len(pairs))
	for _, p := range pairs {
		out[p.EntityID] = append(out[p.EntityID], p.Name)
	}
	return out, nil
}

// SetLabels replaces the labels of one entity. An empty list removes all of
// them. The replacement is atomic.
func (r *LabelRepository) SetLabels(ctx context.Context, entityID string, labels []string) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM entity_labels WHERE entity_id = $1`, entityID); err != nil {
		return err
	}

	for _, name := range labels {
		var labelID int64
		err = tx.QueryRow(ctx, `
INSERT INTO labels (name) VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, name).Scan(&labelID)
		if err != nil {
			return fmt.Errorf("upsert label %q: %w", name, err)
		}

		_, err = tx.Exec(ctx, `
INSERT INTO entity_labels (entity_id, label_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, entityID, labelID)
		if err != nil {
			return err
		}
	}
	return nil
}
