package user

import "context"

type Repository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) (int64, error)
	GetByID(ctx context.Context, userID uint) (*User, error)
	// GetByName looks a user up by the uppercase-normalized name.
	GetByName(ctx context.Context, name string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
