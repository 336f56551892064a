package models

import (
	"gorm.io/gorm"
)

// Teacher é o docente acompanhado pelas avaliações. Subjects guarda as
// unidades curriculares separadas por vírgula e Workload a carga horária
// semanal.
type Teacher struct {
	gorm.Model
	Name        string `gorm:"size:100;not null;index"`
	Area        string `gorm:"size:100;not null"`
	Subjects    string `gorm:"type:text"`
	Workload    int
	Email       string       `gorm:"size:120"`
	Phone       string       `gorm:"size:20"`
	Evaluations []Evaluation `gorm:"foreignKey:TeacherID;references:ID"`
}
