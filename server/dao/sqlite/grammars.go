package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
)

type GrammarsDB struct {
	db *sql.DB
}

func (repo *GrammarsDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS grammars (
		id TEXT NOT NULL PRIMARY KEY,
		owner_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE ON UPDATE CASCADE,
		name TEXT NOT NULL,
		text TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

func (repo *GrammarsDB) Create(ctx context.Context, g dao.Grammar) (dao.Grammar, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.Grammar{}, fmt.Errorf("could not generate ID: %w", err)
	}

	now := time.Now()
	_, err = repo.db.ExecContext(ctx, `INSERT INTO grammars (id, owner_id, name, text, created, modified) VALUES (?, ?, ?, ?, ?, ?)`,
		newUUID.String(), g.OwnerID.String(), g.Name, g.Text, now.Unix(), now.Unix())
	if err != nil {
		return dao.Grammar{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *GrammarsDB) GetByID(ctx context.Context, id uuid.UUID) (dao.Grammar, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, owner_id, name, text, created, modified FROM grammars WHERE id = ?;`, id.String())
	return scanGrammar(row.Scan)
}

func (repo *GrammarsDB) GetAllByUser(ctx context.Context, ownerID uuid.UUID) ([]dao.Grammar, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, owner_id, name, text, created, modified FROM grammars WHERE owner_id = ? ORDER BY name;`, ownerID.String())
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.Grammar
	for rows.Next() {
		g, err := scanGrammar(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, g)
	}

	return all, wrapDBError(rows.Err())
}

func (repo *GrammarsDB) Update(ctx context.Context, id uuid.UUID, g dao.Grammar) (dao.Grammar, error) {
	res, err := repo.db.ExecContext(ctx, `UPDATE grammars SET name=?, text=?, modified=? WHERE id=?;`,
		g.Name, g.Text, time.Now().Unix(), id.String())
	if err != nil {
		return dao.Grammar{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.Grammar{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.Grammar{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, id)
}

func (repo *GrammarsDB) Delete(ctx context.Context, id uuid.UUID) (dao.Grammar, error) {
	curVal, err := repo.GetByID(ctx, id)
	if err != nil {
		return curVal, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM grammars WHERE id = ?`, id.String())
	if err != nil {
		return curVal, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return curVal, wrapDBError(err)
	}
	if rowsAff < 1 {
		return curVal, dao.ErrNotFound
	}

	return curVal, nil
}

func (repo *GrammarsDB) Close() error {
	return nil
}

func scanGrammar(scan func(...interface{}) error) (dao.Grammar, error) {
	var g dao.Grammar
	var id, ownerID string
	var created, modified int64

	err := scan(&id, &ownerID, &g.Name, &g.Text, &created, &modified)
	if err != nil {
		return dao.Grammar{}, wrapDBError(err)
	}

	g.ID, err = uuid.Parse(id)
	if err != nil {
		return g, fmt.Errorf("stored UUID %q is invalid", id)
	}
	g.OwnerID, err = uuid.Parse(ownerID)
	if err != nil {
		return g, fmt.Errorf("stored owner ID %q is invalid: %w", ownerID, err)
	}
	g.Created = time.Unix(created, 0)
	g.Modified = time.Unix(modified, 0)

	return g, nil
}
