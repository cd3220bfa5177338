package repositories

import (
	"context"
	"time"

	"little-lemon/config"
	"little-lemon/models"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		now,
		now,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT id, username, email, password, created_at, updated_at FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT id, username, email, password, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int
	err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE email = $1`, email).Scan(&count)
	return count > 0, err
}

// IsMember satisfies middleware.GroupChecker.
func (r *UserRepository) IsMember(ctx context.Context, userID int, group string) (bool, error) {
	query := `
		SELECT COUNT(*)
		FROM user_groups ug
		JOIN groups g ON g.id = ug.group_id
		WHERE ug.user_id = $1 AND g.name = $2
	`
	var count int
	if err := config.DB.QueryRow(ctx, query, userID, group).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *UserRepository) ListGroupMembers(ctx context.Context, group string) ([]models.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.password, u.created_at, u.updated_at
		FROM users u
		JOIN user_groups ug ON ug.user_id = u.id
		JOIN groups g ON g.id = ug.group_id
		WHERE g.name = $1
		ORDER BY u.username
	`
	rows, err := config.DB.Query(ctx, query, group)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) AddToGroup(ctx context.Context, userID int, group string) error {
	var exists int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE id = $1`, userID).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return pgx.ErrNoRows
	}

	var groupID int
	if err := config.DB.QueryRow(ctx, `SELECT id FROM groups WHERE name = $1`, group).Scan(&groupID); err != nil {
		return err
	}

	_, err := config.DB.Exec(ctx,
		`INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, groupID)
	return err
}

func (r *UserRepository) RemoveFromGroup(ctx context.Context, userID int, group string) error {
	tag, err := config.DB.Exec(ctx,
		`DELETE FROM user_groups
		 WHERE user_id = $1 AND group_id = (SELECT id FROM groups WHERE name = $2)`,
		userID, group)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
