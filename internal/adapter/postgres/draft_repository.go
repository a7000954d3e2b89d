package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

// DraftRepository stores draft hierarchies as JSONB documents.
type DraftRepository struct {
	pool *pgxpool.Pool
}

// NewDraftRepository constructs a new DraftRepository with the given pool.
func NewDraftRepository(pool *pgxpool.Pool) *DraftRepository {
	return &DraftRepository{pool: pool}
}

// CreateDraft stores a new tree and returns its id. Nodes without an id get a
// generated one so queue items can be selected later.
func (r *DraftRepository) CreateDraft(ctx context.Context, owner string, tree domain.DraftTree) (string, error) {
	if tree.ID == "" {
		tree.ID = uuid.NewString()
	}
	assignNodeIDs(&tree)

	doc, err := json.Marshal(tree)
	if err != nil {
		return "", err
	}

	_, err = r.pool.Exec(ctx, `
INSERT INTO drafts (id, owner, tree, created_at, updated_at)
VALUES ($1, $2, $3, now(), now())`, tree.ID, owner, doc)
	if err != nil {
		return "", err
	}
	return tree.ID, nil
}

// GetDraft loads a tree by id.
func (r *DraftRepository) GetDraft(ctx context.Context, id string) (*domain.DraftTree, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT tree FROM drafts WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrDraftNotFound
		}
		return nil, err
	}

	var tree domain.DraftTree
	if err = json.Unmarshal(doc, &tree); err != nil {
		return nil, err
	}
	tree.ID = id
	return &tree, nil
}

// SaveDraft overwrites a stored tree, typically after a publish run recorded
// remote ids in it.
func (r *DraftRepository) SaveDraft(ctx context.Context, tree domain.DraftTree) error {
	doc, err := json.Marshal(tree)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `UPDATE drafts SET tree = $2, updated_at = now() WHERE id = $1`, tree.ID, doc)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrDraftNotFound
	}
	return nil
}

func assignNodeIDs(tree *domain.DraftTree) {
	c := &tree.Campaign
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	for i := range c.AdSets {
		set := &c.AdSets[i]
		if set.ID == "" {
			set.ID = uuid.NewString()
		}
		for j := range set.Ads {
			if set.Ads[j].ID == "" {
				set.Ads[j].ID = uuid.NewString()
			}
		}
	}
}
