package models

import (
	"gorm.io/gorm"
)

type EvaluationAttachment struct {
	gorm.Model
	EvaluationID     uint   `gorm:"not null;index"`
	Filename         string `gorm:"size:255;not null"`
	OriginalFilename string `gorm:"size:255;not null"`
	FilePath         string `gorm:"size:500;not null"`
	FileSize         int64
	MimeType         string `gorm:"size:100"`
}
