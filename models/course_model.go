package models

import (
	"gorm.io/gorm"
)

// Period segue o formato usado nos formulários impressos, ex.: "1° Sem/25".
type Course struct {
	gorm.Model
	Name                string       `gorm:"size:100;not null;index"`
	Period              string       `gorm:"size:20;not null"`
	CurriculumComponent string       `gorm:"size:100;not null"`
	ClassCode           string       `gorm:"size:20"`
	Evaluations         []Evaluation `gorm:"foreignKey:CourseID;references:ID"`
}
