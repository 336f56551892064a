package seeders

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

func TestEnsureAdminUserCreatesAccount(t *testing.T) {
	db := openTestDB(t)

	created, err := EnsureAdminUser(db)
	if err != nil {
		t.Fatalf("EnsureAdminUser falhou: %v", err)
	}
	if !created {
		t.Fatal("esperava a criação da conta admin no primeiro boot")
	}

	var admin models.User
	if err := db.Where("username = ?", "edson.lemes").First(&admin).Error; err != nil {
		t.Fatalf("conta admin não encontrada após o seed: %v", err)
	}

	if admin.Name != "Edson Lemes" {
		t.Errorf("nome = %q, esperado %q", admin.Name, "Edson Lemes")
	}
	if admin.Role != models.RoleAdmin {
		t.Errorf("perfil = %q, esperado %q", admin.Role, models.RoleAdmin)
	}
	if admin.Email != "edson.lemes@senai.br" {
		t.Errorf("e-mail = %q, esperado %q", admin.Email, "edson.lemes@senai.br")
	}
	if !admin.Status {
		t.Error("a conta admin deveria nascer ativa")
	}
	if err := admin.CheckPassword("senai103103"); err != nil {
		t.Error("a senha padrão deveria conferir com o hash gravado")
	}
	if admin.Password == "senai103103" {
		t.Error("a senha não pode ser gravada em texto puro")
	}
}

func TestEnsureAdminUserIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	if _, err := EnsureAdminUser(db); err != nil {
		t.Fatalf("primeiro seed falhou: %v", err)
	}

	created, err := EnsureAdminUser(db)
	if err != nil {
		t.Fatalf("segundo seed falhou: %v", err)
	}
	if created {
		t.Error("o segundo boot não deveria criar outra conta")
	}

	var count int64
	if err := db.Model(&models.User{}).Where("username = ?", "edson.lemes").Count(&count).Error; err != nil {
		t.Fatalf("contagem falhou: %v", err)
	}
	if count != 1 {
		t.Errorf("existem %d contas admin, esperava exatamente 1", count)
	}
}

func TestEnsureAdminUserNeverTouchesExistingAccount(t *testing.T) {
	db := openTestDB(t)

	if _, err := EnsureAdminUser(db); err != nil {
		t.Fatalf("seed inicial falhou: %v", err)
	}

	// Um administrador alterou a conta manualmente depois do primeiro boot.
	var admin models.User
	if err := db.Where("username = ?", "edson.lemes").First(&admin).Error; err != nil {
		t.Fatalf("conta admin não encontrada: %v", err)
	}
	if err := admin.SetPassword("outra-senha-forte"); err != nil {
		t.Fatalf("SetPassword falhou: %v", err)
	}
	admin.Name = "Edson L. Alterado"
	admin.Email = "outro@senai.br"
	if err := db.Save(&admin).Error; err != nil {
		t.Fatalf("ajuste manual falhou: %v", err)
	}

	if _, err := EnsureAdminUser(db); err != nil {
		t.Fatalf("reseed falhou: %v", err)
	}

	var after models.User
	if err := db.Where("username = ?", "edson.lemes").First(&after).Error; err != nil {
		t.Fatalf("conta admin não encontrada após o reseed: %v", err)
	}

	if after.Name != "Edson L. Alterado" {
		t.Errorf("o reseed sobrescreveu o nome: %q", after.Name)
	}
	if after.Email != "outro@senai.br" {
		t.Errorf("o reseed sobrescreveu o e-mail: %q", after.Email)
	}
	if err := after.CheckPassword("outra-senha-forte"); err != nil {
		t.Error("o reseed sobrescreveu a senha alterada manualmente")
	}
}
