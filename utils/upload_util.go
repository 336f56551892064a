package utils

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type UploadedFileInfo struct {
	Filename         string
	OriginalFilename string
	FilePath         string
	FileSize         int64
	MimeType         string
}

// SaveUploadedFile grava o arquivo enviado no diretório de uploads com um
// prefixo único, evitando colisão entre arquivos de mesmo nome.
func SaveUploadedFile(c *fiber.Ctx, file *multipart.FileHeader, uploadDir string) (*UploadedFileInfo, error) {
	if file == nil || file.Filename == "" {
		return nil, nil
	}

	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}

	originalName := filepath.Base(file.Filename)
	uniqueName := uuid.New().String() + "_" + originalName
	destPath := filepath.Join(uploadDir, uniqueName)

	if err := c.SaveFile(file, destPath); err != nil {
		return nil, err
	}

	info := &UploadedFileInfo{
		Filename:         uniqueName,
		OriginalFilename: originalName,
		FilePath:         destPath,
		FileSize:         file.Size,
		MimeType:         file.Header.Get("Content-Type"),
	}

	if stat, err := os.Stat(destPath); err == nil {
		info.FileSize = stat.Size()
	}

	return info, nil
}
