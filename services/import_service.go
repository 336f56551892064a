package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const importSheetName = "Docentes"

var importHeaders = []string{
	"Nome*", "Área*", "Unidades Curriculares", "Carga Horária (h/sem)", "E-mail", "Telefone",
}

// ImportResult acumula o desfecho linha a linha da importação de docentes.
type ImportResult struct {
	Success  int
	Warnings []string
	Errors   []string
}

type IImportService interface {
	GenerateTeachersTemplate() ([]byte, error)
	ImportTeachersFromExcel(reader io.Reader) (*ImportResult, error)
}

type ImportService struct {
	teachers repositories.ITeacherRepository
}

func NewImportService(db *gorm.DB) IImportService {
	return &ImportService{teachers: repositories.NewTeacherRepository(db)}
}

// GenerateTeachersTemplate produz a planilha modelo com o cabeçalho esperado
// e uma linha de exemplo.
func (s *ImportService) GenerateTeachersTemplate() ([]byte, error) {
	file := excelize.NewFile()
	defer func() {
		_ = file.Close()
	}()

	index, err := file.NewSheet(importSheetName)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	_ = file.DeleteSheet("Sheet1")

	for col, header := range importHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(importSheetName, cell, header); err != nil {
			return nil, err
		}
	}

	example := []interface{}{"Maria da Silva", "Mecânica", "Metrologia, Desenho Técnico", 40, "maria.silva@senai.br", "(11) 99999-0000"}
	for col, value := range example {
		cell, err := excelize.CoordinatesToCellName(col+1, 2)
		if err != nil {
			return nil, err
		}
		if err := file.SetCellValue(importSheetName, cell, value); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// ImportTeachersFromExcel lê a planilha e cadastra os docentes válidos.
// Linhas com problema viram avisos ou erros no resultado; a importação das
// demais segue normalmente.
func (s *ImportService) ImportTeachersFromExcel(reader io.Reader) (*ImportResult, error) {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("não foi possível abrir a planilha: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	sheet := importSheetName
	if !sheetExists(file, sheet) {
		// Planilhas produzidas fora do modelo geralmente usam a primeira aba.
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("não foi possível ler a planilha: %w", err)
	}

	result := &ImportResult{}
	for i, row := range rows {
		if i == 0 {
			continue // cabeçalho
		}
		line := i + 1

		name := cellAt(row, 0)
		area := cellAt(row, 1)
		if name == "" && area == "" {
			continue
		}
		if name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: nome do docente ausente.", line))
			continue
		}
		if area == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Linha %d: área do docente ausente.", line))
			continue
		}

		if _, err := s.teachers.FindByName(name); err == nil {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Linha %d: docente '%s' já cadastrado, ignorado.", line, name))
			continue
		} else if err != gorm.ErrRecordNotFound {
			result.Errors = append(result.Errors,
				fmt.Sprintf("Linha %d: erro ao verificar o docente '%s'.", line, name))
			continue
		}

		teacher := models.Teacher{
			Name:     name,
			Area:     area,
			Subjects: cellAt(row, 2),
			Email:    cellAt(row, 4),
			Phone:    cellAt(row, 5),
		}
		if workloadStr := cellAt(row, 3); workloadStr != "" {
			workload, convErr := strconv.Atoi(workloadStr)
			if convErr != nil {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Linha %d: carga horária '%s' inválida, campo ignorado.", line, workloadStr))
			} else {
				teacher.Workload = workload
			}
		}

		if err := s.teachers.Create(&teacher); err != nil {
			utils.Log.Error("Erro ao importar docente",
				zap.String("name", name),
				zap.Int("line", line),
				zap.Error(err),
			)
			result.Errors = append(result.Errors,
				fmt.Sprintf("Linha %d: erro ao gravar o docente '%s'.", line, name))
			continue
		}

		result.Success++
	}

	utils.SLog.Infof("Importação de docentes concluída: %d cadastrados, %d avisos, %d erros",
		result.Success, len(result.Warnings), len(result.Errors))
	return result, nil
}

func sheetExists(file *excelize.File, name string) bool {
	for _, sheet := range file.GetSheetList() {
		if sheet == name {
			return true
		}
	}
	return false
}

func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

var _ IImportService = (*ImportService)(nil)
