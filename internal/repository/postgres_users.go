package repository

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
)

const usuarioColumns = "id, nacionalidad, cedula, nombre, apellido, login, password, activo, expired"

// PostgresUsersRepository is the accounts-store implementation.
type PostgresUsersRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresUsersRepository(db *sql.DB, logger *zap.Logger) *PostgresUsersRepository {
	return &PostgresUsersRepository{db: db, logger: logger}
}

var _ UsersRepository = (*PostgresUsersRepository)(nil)

func scanUsuario(row interface{ Scan(...interface{}) error }) (*domain.Usuario, error) {
	var u domain.Usuario
	err := row.Scan(
		&u.ID,
		&u.Nacionalidad,
		&u.Cedula,
		&u.Nombre,
		&u.Apellido,
		&u.Login,
		&u.Password,
		&u.Activo,
		&u.Expired,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresUsersRepository) ListUsuarios(ctx context.Context) ([]domain.Usuario, error) {
	query := "SELECT " + usuarioColumns + " FROM usuario ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	defer rows.Close()

	var users []domain.Usuario
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan usuario: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate usuarios: %w", err)
	}

	return users, nil
}

func (r *PostgresUsersRepository) GetUsuario(ctx context.Context, id int64) (*domain.Usuario, error) {
	query := "SELECT " + usuarioColumns + " FROM usuario WHERE id = $1"

	u, err := scanUsuario(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query usuario: %w", err)
	}
	return u, nil
}

// GetUsuarioForLogin matches credentials against the stored SHA-256 hex hash.
// The password column is excluded from the projection on purpose.
func (r *PostgresUsersRepository) GetUsuarioForLogin(ctx context.Context, cedula int64, passwordHash string) (*domain.Usuario, error) {
	query := `
		SELECT id, nacionalidad, cedula, nombre, apellido, login, activo, expired
		FROM usuario
		WHERE cedula = $1 AND password = $2
	`

	var u domain.Usuario
	err := r.db.QueryRowContext(ctx, query, cedula, passwordHash).Scan(
		&u.ID,
		&u.Nacionalidad,
		&u.Cedula,
		&u.Nombre,
		&u.Apellido,
		&u.Login,
		&u.Activo,
		&u.Expired,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query usuario for login: %w", err)
	}

	return &u, nil
}

func (r *PostgresUsersRepository) CreateUsuario(ctx context.Context, u domain.UsuarioCreate) (*domain.Usuario, error) {
	query := `
		INSERT INTO usuario (nacionalidad, cedula, nombre, apellido, login, password, activo, expired)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + usuarioColumns

	created, err := scanUsuario(r.db.QueryRowContext(ctx, query,
		u.Nacionalidad, u.Cedula, u.Nombre, u.Apellido, u.Login, u.Password, u.Activo, u.Expired,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert usuario: %w", err)
	}
	return created, nil
}

func (r *PostgresUsersRepository) UpdateUsuario(ctx context.Context, id int64, u domain.UsuarioUpdate) (*domain.Usuario, error) {
	query := `
		UPDATE usuario
		SET login = $1,
		    password = $2,
		    activo = $3,
		    expired = $4
		WHERE id = $5
		RETURNING ` + usuarioColumns

	updated, err := scanUsuario(r.db.QueryRowContext(ctx, query,
		u.Login, u.Password, u.Activo, u.Expired, id,
	))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update usuario: %w", err)
	}
	return updated, nil
}

// ToggleBloqueo flips the activo flag.
func (r *PostgresUsersRepository) ToggleBloqueo(ctx context.Context, id int64) (*domain.Usuario, error) {
	query := `
		UPDATE usuario SET activo = CASE WHEN activo = 1 THEN 0 ELSE 1 END
		WHERE id = $1
		RETURNING ` + usuarioColumns

	updated, err := scanUsuario(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to toggle usuario: %w", err)
	}
	return updated, nil
}

// BatchInsertUsuarios inserts imported accounts in one transaction,
// skipping logins that already exist.
func (r *PostgresUsersRepository) BatchInsertUsuarios(ctx context.Context, users []domain.UsuarioCreate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO usuario (nacionalidad, cedula, nombre, apellido, login, password, activo, expired)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (login) DO NOTHING
	`

	for _, u := range users {
		if _, err := tx.ExecContext(ctx, query,
			u.Nacionalidad, u.Cedula, u.Nombre, u.Apellido, u.Login, u.Password, u.Activo, u.Expired,
		); err != nil {
			return fmt.Errorf("failed to insert usuario %s: %w", u.Login, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import transaction: %w", err)
	}
	return nil
}
