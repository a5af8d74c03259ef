package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/angel1410/score-backend/internal/domain"
)

func newUserService(repo *fakeUsersRepo) *UserService {
	return NewUserService(repo, zap.NewNop())
}

func TestUserList_NilBecomesEmptySlice(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	users, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserCreate_RequiresLoginAndPassword(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.Create(context.Background(), domain.UsuarioCreate{Login: "arios"})
	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, domain.MissingField, ve.Kind)

	_, err = svc.Create(context.Background(), domain.UsuarioCreate{Password: "x"})
	ve, ok = domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, domain.MissingField, ve.Kind)
}

func TestUserCreate_HashesPassword(t *testing.T) {
	repo := &fakeUsersRepo{created: &domain.Usuario{ID: 1}}
	svc := newUserService(repo)

	_, err := svc.Create(context.Background(), domain.UsuarioCreate{
		Login:    "arios",
		Password: "secreto",
	})

	require.NoError(t, err)
	assert.Equal(t, HashPassword("secreto"), repo.createArgs.Password)
}

func TestUserUpdate_BlankPasswordKeepsStoredHash(t *testing.T) {
	stored := HashPassword("original")
	repo := &fakeUsersRepo{
		getUser: &domain.Usuario{ID: 5, Password: stored},
		updated: &domain.Usuario{ID: 5},
	}
	svc := newUserService(repo)

	_, err := svc.Update(context.Background(), 5, domain.UsuarioUpdate{Login: "arios"})

	require.NoError(t, err)
	assert.Equal(t, stored, repo.updateArgs.Password)
}

func TestUserUpdate_NewPasswordRehashed(t *testing.T) {
	repo := &fakeUsersRepo{
		getUser: &domain.Usuario{ID: 5, Password: HashPassword("original")},
		updated: &domain.Usuario{ID: 5},
	}
	svc := newUserService(repo)

	_, err := svc.Update(context.Background(), 5, domain.UsuarioUpdate{
		Login:    "arios",
		Password: "nueva",
	})

	require.NoError(t, err)
	assert.Equal(t, HashPassword("nueva"), repo.updateArgs.Password)
}

func TestUserUpdate_UnknownUser(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.Update(context.Background(), 99, domain.UsuarioUpdate{Login: "x"})

	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

func TestToggleBloqueo_UnknownUser(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.ToggleBloqueo(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrUsuarioNotFound)
}

const importCSV = "nacionalidad,cedula,nombre,apellido,login,password\n" +
	"V,11111111,LUIS,MATA,lmata,clave1\n" +
	"V,22222222,ANA,RIOS,arios,clave2\n" +
	"V,,SIN,CEDULA,nadie,clave3\n" + // incomplete, skipped
	"V,33333333\n" // too short, skipped

func TestImport_CSV(t *testing.T) {
	repo := &fakeUsersRepo{}
	svc := newUserService(repo)

	count, err := svc.Import(context.Background(), "usuarios.csv", "text/csv", []byte(importCSV))

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	require.Len(t, repo.batchRows, 2)
	assert.Equal(t, "lmata", repo.batchRows[0].Login)
	assert.Equal(t, int64(11111111), repo.batchRows[0].Cedula)
	assert.Equal(t, 1, repo.batchRows[0].Activo)
	// Passwords reach the repository already hashed.
	assert.Equal(t, HashPassword("clave1"), repo.batchRows[0].Password)
	assert.Equal(t, HashPassword("clave2"), repo.batchRows[1].Password)
}

func TestImport_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]string{
		"nacionalidad", "cedula", "nombre", "apellido", "login", "password",
	}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]string{
		"V", "11111111", "LUIS", "MATA", "lmata", "clave1",
	}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	repo := &fakeUsersRepo{}
	svc := newUserService(repo)

	count, err := svc.Import(context.Background(), "usuarios.xlsx",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, repo.batchRows, 1)
	assert.Equal(t, "lmata", repo.batchRows[0].Login)
}

func TestImport_EmptyFile(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.Import(context.Background(), "usuarios.csv", "text/csv", nil)

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, domain.MissingField, ve.Kind)
}

func TestImport_OversizeFile(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.Import(context.Background(), "usuarios.csv", "text/csv",
		make([]byte, MaxImportSize+1))

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, domain.InvalidUpload, ve.Kind)
}

func TestImport_UnsupportedFormat(t *testing.T) {
	svc := newUserService(&fakeUsersRepo{})

	_, err := svc.Import(context.Background(), "usuarios.pdf", "application/pdf", []byte("%PDF"))

	ve, ok := domain.AsValidation(err)
	require.True(t, ok)
	assert.Equal(t, domain.InvalidUpload, ve.Kind)
}
