package repos

import (
	"context"

	"usersvc/internal/domain"
)

type UserRepo struct{ gw *Gateway }

func NewUserRepo(gw *Gateway) *UserRepo { return &UserRepo{gw: gw} }

// List returns every user in natural storage order. Never nil.
func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	out := []domain.User{}
	err := r.gw.Query(ctx, &out, `SELECT id,username,email,age,role FROM users`)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UserRepo) ByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	if err := r.gw.Get(ctx, &u, `SELECT id,username,email,age,role FROM users WHERE id=?`, id); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts the row as given and returns the assigned id.
// Defaults are the caller's concern.
func (r *UserRepo) Create(ctx context.Context, in domain.UserInput) (int64, error) {
	res, err := r.gw.Execute(ctx, `
		INSERT INTO users(username,email,age,role)
		VALUES(?,?,?,?)
	`, in.Username.Arg(), in.Email.Arg(), in.Age.Arg(), in.Role.Arg())
	if err != nil {
		return 0, err
	}
	return res.LastInsertID, nil
}

// Update overwrites all four mutable fields. Omitted fields become NULL.
func (r *UserRepo) Update(ctx context.Context, id int64, in domain.UserInput) error {
	res, err := r.gw.Execute(ctx, `
		UPDATE users SET username=?, email=?, age=?, role=?
		WHERE id=?
	`, in.Username.Arg(), in.Email.Arg(), in.Age.Arg(), in.Role.Arg(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.gw.Execute(ctx, `DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
