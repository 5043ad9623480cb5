package store

import (
	"context"
	"database/sql"

	"seotda-server/pkg/db"
)

const roomColumns = `
rooms.id,
rooms.name,
rooms.closed,
rooms.created`

// Postgres is a RoomStore backed by postgres
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns a postgres-backed room store
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// Create saves a new room record
func (p *Postgres) Create(ctx context.Context, room *Room) error {
	const query = `
INSERT INTO rooms (id, name)
VALUES ($1, $2)
RETURNING created`

	row := p.db.QueryRowContext(ctx, query, room.ID, room.Name)
	return row.Scan(&room.Created)
}

func getRoomByRow(row db.Scanner) (*Room, error) {
	var r Room
	if err := row.Scan(&r.ID, &r.Name, &r.Closed, &r.Created); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &r, nil
}

// Get returns a room by id
func (p *Postgres) Get(ctx context.Context, id string) (*Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE id = $1`

	return getRoomByRow(p.db.QueryRowContext(ctx, query, id))
}

// List returns open rooms, newest first
func (p *Postgres) List(ctx context.Context, start int64, rows int) ([]*Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE NOT closed
ORDER BY created DESC
OFFSET $1 LIMIT $2`

	res, err := p.db.QueryContext(ctx, query, start, rows)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	records := make([]*Room, 0)
	for res.Next() {
		record, err := getRoomByRow(res)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, res.Err()
}

// SetClosed marks a room as closed
func (p *Postgres) SetClosed(ctx context.Context, id string) error {
	const query = `
UPDATE rooms
SET closed = true
WHERE id = $1`

	res, err := p.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	count, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if count == 0 {
		return ErrNotFound
	}

	return nil
}
