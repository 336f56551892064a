package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

type ModelError string

func (e ModelError) Error() string {
	return string(e)
}

const (
	ErrInvalidUserRole       ModelError = "perfil de usuário inválido (UserRole)"
	ErrPasswordCannotBeEmpty ModelError = "a senha não pode ser vazia"
	ErrUsernameCannotBeEmpty ModelError = "o nome de usuário não pode ser vazio"
)

type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleEvaluator UserRole = "evaluator"
	RoleTeacher   UserRole = "teacher"
)

// ValidUserRoles lista os perfis aceitos, na ordem exibida nos formulários.
func ValidUserRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleEvaluator, RoleTeacher}
}

func (UserRole) GormDataType() string {
	return "user_role"
}

func (UserRole) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	if db.Dialector.Name() == "postgres" {
		return "user_role"
	}
	return "varchar(20)"
}

type User struct {
	gorm.Model
	Username string   `gorm:"size:80;unique;not null"`
	Name     string   `gorm:"size:100;not null;index"`
	Password string   `gorm:"size:255;not null"`
	Role     UserRole `gorm:"type:user_role;not null;default:'evaluator';index"`
	Email    string   `gorm:"size:120"`
	Status   bool     `gorm:"default:true;index"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.Username == "" {
		return ErrUsernameCannotBeEmpty
	}
	if u.Password == "" {
		return ErrPasswordCannotBeEmpty
	}

	validRoles := map[UserRole]bool{RoleAdmin: true, RoleEvaluator: true, RoleTeacher: true}
	if _, roleIsValid := validRoles[u.Role]; !roleIsValid {
		return ErrInvalidUserRole
	}

	return nil
}

// SetPassword substitui a senha pelo hash bcrypt correspondente. O texto
// puro nunca é persistido.
func (u *User) SetPassword(password string) error {
	if password == "" {
		return ErrPasswordCannotBeEmpty
	}
	hashed, bcryptErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if bcryptErr != nil {
		return bcryptErr
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
