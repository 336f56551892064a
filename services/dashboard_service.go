package services

import (
	"math"
	"sort"
	"time"

	"acaodocente/models"
	"acaodocente/repositories"
	"acaodocente/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DashboardStats alimenta a página inicial.
type DashboardStats struct {
	TotalTeachers            int64
	TotalEvaluations         int64
	TotalCourses             int64
	RecentEvaluations        []models.Evaluation
	TeachersWithoutThisMonth []models.Teacher
	AvgPlanning              float64
	AvgClass                 float64
}

// MonthlySeries são os totais de avaliações dos últimos meses, do mais
// antigo para o mais recente.
type MonthlySeries struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

type TeacherPerformance struct {
	Name     string  `json:"name"`
	Planning float64 `json:"planning"`
	Class    float64 `json:"class"`
	Overall  float64 `json:"overall"`
}

type DashboardData struct {
	MonthlyEvaluations MonthlySeries        `json:"monthly_evaluations"`
	TopPerformers      []TeacherPerformance `json:"top_performers"`
}

type IDashboardService interface {
	GetStats() (*DashboardStats, error)
	GetDashboardData() (*DashboardData, error)
}

type DashboardService struct {
	teachers    repositories.ITeacherRepository
	courses     repositories.ICourseRepository
	evaluations repositories.IEvaluationRepository
}

func NewDashboardService(db *gorm.DB) IDashboardService {
	return &DashboardService{
		teachers:    repositories.NewTeacherRepository(db),
		courses:     repositories.NewCourseRepository(db),
		evaluations: repositories.NewEvaluationRepository(db),
	}
}

func (s *DashboardService) GetStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalTeachers, err = s.teachers.Count(); err != nil {
		return nil, err
	}
	if stats.TotalEvaluations, err = s.evaluations.Count(); err != nil {
		return nil, err
	}
	if stats.TotalCourses, err = s.courses.Count(); err != nil {
		return nil, err
	}

	if stats.RecentEvaluations, err = s.evaluations.FindRecent(5); err != nil {
		utils.Log.Warn("Erro ao buscar avaliações recentes", zap.Error(err))
	}

	startOfMonth := startOfMonth(time.Now().UTC())
	if stats.TeachersWithoutThisMonth, err = s.teachers.FindWithoutEvaluationSince(startOfMonth); err != nil {
		utils.Log.Warn("Erro ao listar docentes sem avaliação no mês", zap.Error(err))
	}

	evaluations, err := s.evaluations.FindAll()
	if err != nil {
		return nil, err
	}
	if len(evaluations) > 0 {
		var planningSum, classSum float64
		for i := range evaluations {
			planningSum += evaluations[i].PlanningPercentage()
			classSum += evaluations[i].ClassPercentage()
		}
		count := float64(len(evaluations))
		stats.AvgPlanning = roundOne(planningSum / count)
		stats.AvgClass = roundOne(classSum / count)
	}

	return stats, nil
}

// GetDashboardData monta a série mensal dos últimos 6 meses e o ranking dos
// docentes com melhor desempenho médio.
func (s *DashboardService) GetDashboardData() (*DashboardData, error) {
	data := &DashboardData{
		MonthlyEvaluations: MonthlySeries{
			Labels: make([]string, 0, 6),
			Data:   make([]int64, 0, 6),
		},
		TopPerformers: []TeacherPerformance{},
	}

	now := time.Now().UTC()
	for i := 5; i >= 0; i-- {
		monthStart := startOfMonth(now).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

		count, err := s.evaluations.CountBetween(monthStart, monthEnd)
		if err != nil {
			return nil, err
		}

		data.MonthlyEvaluations.Labels = append(data.MonthlyEvaluations.Labels,
			monthStart.Format("Jan/2006"))
		data.MonthlyEvaluations.Data = append(data.MonthlyEvaluations.Data, count)
	}

	teachers, err := s.teachers.FindAll()
	if err != nil {
		return nil, err
	}

	for i := range teachers {
		teacher := &teachers[i]
		evaluations, err := s.evaluations.FindByTeacher(teacher.ID, nil, nil)
		if err != nil {
			utils.Log.Warn("Erro ao buscar avaliações do docente",
				zap.Uint("teacher_id", teacher.ID),
				zap.Error(err),
			)
			continue
		}
		if len(evaluations) == 0 {
			continue
		}

		var planningSum, classSum float64
		for j := range evaluations {
			planningSum += evaluations[j].PlanningPercentage()
			classSum += evaluations[j].ClassPercentage()
		}
		count := float64(len(evaluations))
		avgPlanning := planningSum / count
		avgClass := classSum / count

		data.TopPerformers = append(data.TopPerformers, TeacherPerformance{
			Name:     teacher.Name,
			Planning: roundOne(avgPlanning),
			Class:    roundOne(avgClass),
			Overall:  roundOne((avgPlanning + avgClass) / 2),
		})
	}

	sort.Slice(data.TopPerformers, func(i, j int) bool {
		return data.TopPerformers[i].Overall > data.TopPerformers[j].Overall
	})
	if len(data.TopPerformers) > 10 {
		data.TopPerformers = data.TopPerformers[:10]
	}

	return data, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func roundOne(v float64) float64 {
	return math.Round(v*10) / 10
}

var _ IDashboardService = (*DashboardService)(nil)
