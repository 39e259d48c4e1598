package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/hcasse/ltgen/server/dao"
	"github.com/google/uuid"
)

type UsersDB struct {
	db *sql.DB
}

func (repo *UsersDB) init() error {
	_, err := repo.db.Exec(`CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		email TEXT NOT NULL,
		created INTEGER NOT NULL,
		modified INTEGER NOT NULL,
		last_logout_time INTEGER NOT NULL,
		last_login_time INTEGER NOT NULL
	);`)
	return wrapDBError(err)
}

func (repo *UsersDB) Create(ctx context.Context, user dao.User) (dao.User, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return dao.User{}, fmt.Errorf("could not generate ID: %w", err)
	}

	now := time.Now()

	_, err = repo.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password, role, email, created, modified, last_logout_time, last_login_time) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		newUUID.String(), user.Username, user.Password, user.Role.String(), convertToDB_Email(user.Email),
		now.Unix(), now.Unix(), now.Unix(), unixOrZero(user.LastLoginTime),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	return repo.GetByID(ctx, newUUID)
}

func (repo *UsersDB) GetAll(ctx context.Context) ([]dao.User, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users ORDER BY username;`)
	if err != nil {
		return nil, wrapDBError(err)
	}
	defer rows.Close()

	var all []dao.User
	for rows.Next() {
		user, err := scanUser(rows.Scan)
		if err != nil {
			return all, err
		}
		all = append(all, user)
	}

	return all, wrapDBError(rows.Err())
}

func (repo *UsersDB) Update(ctx context.Context, id uuid.UUID, user dao.User) (dao.User, error) {
	res, err := repo.db.ExecContext(ctx,
		`UPDATE users SET id=?, username=?, password=?, role=?, email=?, modified=?, last_logout_time=?, last_login_time=? WHERE id=?;`,
		user.ID.String(), user.Username, user.Password, user.Role.String(), convertToDB_Email(user.Email),
		time.Now().Unix(), unixOrZero(user.LastLogoutTime), unixOrZero(user.LastLoginTime), id.String(),
	)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	rowsAff, err := res.RowsAffected()
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}
	if rowsAff < 1 {
		return dao.User{}, dao.ErrNotFound
	}

	return repo.GetByID(ctx, user.ID)
}

func (repo *UsersDB) GetByUsername(ctx context.Context, username string) (dao.User, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users WHERE username = ?;`, username)
	return scanUser(row.Scan)
}

func (repo *UsersDB) GetByID(ctx context.Context, id uuid.UUID) (dao.User, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT id, username, password, role, email, created, modified, last_logout_time, last_login_time FROM users WHERE id = ?;`, id.String())
	return scanUser(row.Scan)
}

func (repo *UsersDB) Delete(ctx context.Context, id uuid.UUID) (dao.User, error) {
	curVal, err := repo.GetByID(ctx, id)
	if err != nil {
		return curVal, err
	}

	res, err := repo.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id.String())
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

func (repo *UsersDB) Close() error {
	return nil
}

func scanUser(scan func(...interface{}) error) (dao.User, error) {
	var user dao.User
	var id, role, email string
	var created, modified, logout, login int64

	err := scan(&id, &user.Username, &user.Password, &role, &email, &created, &modified, &logout, &login)
	if err != nil {
		return dao.User{}, wrapDBError(err)
	}

	user.ID, err = uuid.Parse(id)
	if err != nil {
		return user, fmt.Errorf("stored UUID %q is invalid", id)
	}
	if err := convertFromDB_Email(email, &user.Email); err != nil {
		return user, err
	}
	if err := convertFromDB_Role(role, &user.Role); err != nil {
		return user, err
	}
	user.Created = time.Unix(created, 0)
	user.Modified = time.Unix(modified, 0)
	user.LastLogoutTime = time.Unix(logout, 0)
	if login > 0 {
		user.LastLoginTime = time.Unix(login, 0)
	}

	return user, nil
}
