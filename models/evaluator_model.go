package models

import (
	"gorm.io/gorm"
)

// Evaluator é quem conduz o acompanhamento, ex.: "Coordenador", "Supervisor".
type Evaluator struct {
	gorm.Model
	Name        string       `gorm:"size:100;not null;index"`
	Role        string       `gorm:"size:50;not null"`
	Email       string       `gorm:"size:120"`
	Evaluations []Evaluation `gorm:"foreignKey:EvaluatorID;references:ID"`
}
