package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
	"github.com/angel1410/score-backend/internal/repository"
)

// MaxImportSize caps bulk import uploads at 5 MB.
const MaxImportSize = 5_000_000

// UserService manages application accounts and the bulk CSV/XLSX import.
type UserService struct {
	users  repository.UsersRepository
	logger *zap.Logger
}

func NewUserService(users repository.UsersRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.Usuario, error) {
	users, err := s.users.ListUsuarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}
	if users == nil {
		users = []domain.Usuario{}
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, u domain.UsuarioCreate) (*domain.Usuario, error) {
	if strings.TrimSpace(u.Login) == "" || strings.TrimSpace(u.Password) == "" {
		return nil, domain.NewValidationError(domain.MissingField,
			"Login y password son obligatorios")
	}
	u.Password = HashPassword(u.Password)

	created, err := s.users.CreateUsuario(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("create usuario: %w", err)
	}
	return created, nil
}

// Update changes the editable account fields only. A blank password keeps
// the stored hash.
func (s *UserService) Update(ctx context.Context, id int64, u domain.UsuarioUpdate) (*domain.Usuario, error) {
	existing, err := s.users.GetUsuario(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load usuario: %w", err)
	}
	if existing == nil {
		return nil, domain.ErrUsuarioNotFound
	}

	if strings.TrimSpace(u.Password) == "" {
		u.Password = existing.Password
	} else {
		u.Password = HashPassword(u.Password)
	}

	updated, err := s.users.UpdateUsuario(ctx, id, u)
	if err != nil {
		return nil, fmt.Errorf("update usuario: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return updated, nil
}

func (s *UserService) ToggleBloqueo(ctx context.Context, id int64) (*domain.Usuario, error) {
	updated, err := s.users.ToggleBloqueo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle usuario: %w", err)
	}
	if updated == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	return updated, nil
}

// Import parses a CSV or XLSX upload into account rows, hashes passwords and
// inserts them transactionally. Rows missing required fields are skipped, not
// rejected; the row count of accepted accounts is returned.
func (s *UserService) Import(ctx context.Context, fileName, contentType string, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, domain.NewValidationError(domain.MissingField, "No se recibió archivo")
	}
	if len(data) > MaxImportSize {
		return 0, domain.NewValidationError(domain.InvalidUpload, "Archivo excede 5MB")
	}

	var users []domain.UsuarioCreate
	var err error
	switch {
	case strings.Contains(contentType, "csv") || strings.HasSuffix(fileName, ".csv"):
		users, err = parseUsuariosCSV(data)
	case strings.Contains(contentType, "excel") ||
		strings.HasSuffix(fileName, ".xlsx") || strings.HasSuffix(fileName, ".xls"):
		users, err = parseUsuariosXLSX(data)
	default:
		return 0, domain.NewValidationError(domain.InvalidUpload, "Formato de archivo no soportado")
	}
	if err != nil {
		return 0, fmt.Errorf("parse import file: %w", err)
	}

	for i := range users {
		users[i].Password = HashPassword(users[i].Password)
	}

	if err := s.users.BatchInsertUsuarios(ctx, users); err != nil {
		return 0, fmt.Errorf("import usuarios: %w", err)
	}

	s.logger.Info("Completed bulk account import",
		zap.String("file", fileName),
		zap.Int("accepted_rows", len(users)),
	)
	return len(users), nil
}

// importRow maps one raw record: nacionalidad, cedula, nombre, apellido,
// login, password. Incomplete rows are dropped.
func importRow(fields []string) (domain.UsuarioCreate, bool) {
	if len(fields) < 6 {
		return domain.UsuarioCreate{}, false
	}

	nacionalidad := strings.TrimSpace(fields[0])
	cedula, _ := strconv.ParseInt(strings.TrimSpace(fields[1]), 10, 64)
	nombre := strings.TrimSpace(fields[2])
	apellido := strings.TrimSpace(fields[3])
	login := strings.TrimSpace(fields[4])
	password := strings.TrimSpace(fields[5])

	if nacionalidad == "" || cedula == 0 || nombre == "" || login == "" {
		return domain.UsuarioCreate{}, false
	}

	return domain.UsuarioCreate{
		Nacionalidad: nacionalidad,
		Cedula:       cedula,
		Nombre:       nombre,
		Apellido:     apellido,
		Login:        login,
		Password:     password,
		Activo:       1,
		Expired:      0,
	}, true
}

func parseUsuariosCSV(data []byte) ([]domain.UsuarioCreate, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}

	var users []domain.UsuarioCreate
	for i, record := range records {
		if i == 0 {
			continue // header
		}
		if u, ok := importRow(record); ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func parseUsuariosXLSX(data []byte) ([]domain.UsuarioCreate, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	var users []domain.UsuarioCreate
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if u, ok := importRow(row); ok {
			users = append(users, u)
		}
	}
	return users, nil
}
