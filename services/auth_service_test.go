package services

import (
	"testing"

	"acaodocente/database/migrations"
	"acaodocente/models"
	"acaodocente/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir o banco de teste: %v", err)
	}

	if err := migrations.MigrateUsersTable(db); err != nil {
		t.Fatalf("falha ao migrar a tabela de usuários: %v", err)
	}

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username, password string, active bool) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Name:     "Usuário de Teste",
		Role:     models.RoleEvaluator,
		Status:   active,
	}
	if err := user.SetPassword(password); err != nil {
		t.Fatalf("SetPassword falhou: %v", err)
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("criação do usuário de teste falhou: %v", err)
	}
	return &user
}

func TestAuthenticateSuccess(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, "maria.souza", "senha-segura", true)

	service := NewAuthService(db)
	user, err := service.Authenticate("maria.souza", "senha-segura")
	if err != nil {
		t.Fatalf("Authenticate falhou: %v", err)
	}
	if user.Username != "maria.souza" {
		t.Errorf("username = %q, esperado %q", user.Username, "maria.souza")
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, "maria.souza", "senha-segura", true)

	service := NewAuthService(db)
	if _, err := service.Authenticate("maria.souza", "senha-errada"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestAuthenticateUnknownUser(t *testing.T) {
	db := openTestDB(t)

	service := NewAuthService(db)
	if _, err := service.Authenticate("ninguem", "qualquer"); err != ErrInvalidCredentials {
		t.Errorf("err = %v, esperado ErrInvalidCredentials", err)
	}
}

func TestAuthenticateInactiveUser(t *testing.T) {
	db := openTestDB(t)
	createTestUser(t, db, "inativo.silva", "senha-segura", false)

	service := NewAuthService(db)
	if _, err := service.Authenticate("inativo.silva", "senha-segura"); err != ErrUserInactive {
		t.Errorf("err = %v, esperado ErrUserInactive", err)
	}
}

func TestUpdatePassword(t *testing.T) {
	db := openTestDB(t)
	user := createTestUser(t, db, "troca.senha", "senha-antiga", true)

	service := NewAuthService(db)

	if err := service.UpdatePassword(user.ID, "senha-errada", "senha-nova-forte"); err != ErrCurrentPasswordIncorrect {
		t.Errorf("senha atual errada: err = %v, esperado ErrCurrentPasswordIncorrect", err)
	}
	if err := service.UpdatePassword(user.ID, "senha-antiga", "curta"); err != ErrPasswordTooShort {
		t.Errorf("senha curta: err = %v, esperado ErrPasswordTooShort", err)
	}
	if err := service.UpdatePassword(user.ID, "senha-antiga", "senha-antiga"); err != ErrPasswordSameAsOld {
		t.Errorf("senha repetida: err = %v, esperado ErrPasswordSameAsOld", err)
	}

	if err := service.UpdatePassword(user.ID, "senha-antiga", "senha-nova-forte"); err != nil {
		t.Fatalf("troca de senha válida falhou: %v", err)
	}
	if _, err := service.Authenticate("troca.senha", "senha-nova-forte"); err != nil {
		t.Errorf("a nova senha deveria autenticar: %v", err)
	}
}
