package board

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kamal464/wissen-publication-group-sub000/pkg/models"
)

type Repo struct {
	DB *sql.DB
}

func NewRepo(db *sql.DB) *Repo {
	return &Repo{DB: db}
}

func (r *Repo) List(ctx context.Context) ([]models.BoardMember, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, designation, affiliation, photo_url, display_order, created_at, updated_at
		FROM board_members
		ORDER BY display_order ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list board members: %w", err)
	}
	defer rows.Close()

	var out []models.BoardMember
	for rows.Next() {
		var (
			m           models.BoardMember
			designation sql.NullString
			affiliation sql.NullString
			photoURL    sql.NullString
		)
		if err := rows.Scan(
			&m.ID, &m.Name, &designation, &affiliation, &photoURL,
			&m.DisplayOrder, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan board member: %w", err)
		}
		m.Designation = designation.String
		m.Affiliation = affiliation.String
		m.PhotoURL = photoURL.String
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows err: %w", err)
	}
	return out, nil
}

func (r *Repo) Create(ctx context.Context, m models.BoardMember) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO board_members (name, designation, affiliation, photo_url, display_order)
		VALUES (?, ?, ?, ?, ?)
	`, m.Name, m.Designation, m.Affiliation, m.PhotoURL, m.DisplayOrder)
	if err != nil {
		return 0, fmt.Errorf("create board member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create board member id: %w", err)
	}
	return id, nil
}

func (r *Repo) Update(ctx context.Context, id int64, p models.BoardMemberPatch) (bool, error) {
	var set []string
	var args []any

	addString := func(column string, f models.Opt[string]) {
		if !f.Set {
			return
		}
		set = append(set, column+" = ?")
		if f.Value == nil {
			args = append(args, nil)
		} else {
			args = append(args, *f.Value)
		}
	}

	if p.Name.Set && p.Name.Value != nil {
		set = append(set, "name = ?")
		args = append(args, *p.Name.Value)
	}
	addString("designation", p.Designation)
	addString("affiliation", p.Affiliation)
	addString("photo_url", p.PhotoURL)
	if p.DisplayOrder.Set && p.DisplayOrder.Value != nil {
		set = append(set, "display_order = ?")
		args = append(args, *p.DisplayOrder.Value)
	}

	if len(set) == 0 {
		var exists int
		err := r.DB.QueryRowContext(ctx, `SELECT 1 FROM board_members WHERE id = ?`, id).Scan(&exists)
		if err == sql.ErrNoRows {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("update board member check: %w", err)
		}
		return true, nil
	}

	set = append(set, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	res, err := r.DB.ExecContext(ctx, `
		UPDATE board_members SET `+strings.Join(set, ", ")+` WHERE id = ?
	`, args...)
	if err != nil {
		return false, fmt.Errorf("update board member: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update board member rows: %w", err)
	}
	return n > 0, nil
}

func (r *Repo) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM board_members WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete board member: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
