package handlers

import (
	"acaodocente/services"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type HomeHandler struct {
	dashboardService services.IDashboardService
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{dashboardService: services.NewDashboardService(db)}
}

func (h *HomeHandler) HomePage(c *fiber.Ctx) error {
	flashData, err := utils.GetFlashMessages(c)
	if err != nil {
		utils.Log.Warn("Página inicial: falha ao ler mensagens flash", zap.Error(err))
	}

	stats, statsErr := h.dashboardService.GetStats()
	if statsErr != nil {
		utils.Log.Error("Página inicial: falha ao calcular os indicadores", zap.Error(statsErr))
		stats = &services.DashboardStats{}
	}

	return c.Render("dashboard/dashboard_home", fiber.Map{
		"Title":                    "Painel",
		"Success":                  flashData.Success,
		"Error":                    flashData.Error,
		"TotalTeachers":            stats.TotalTeachers,
		"TotalEvaluations":         stats.TotalEvaluations,
		"TotalCourses":             stats.TotalCourses,
		"RecentEvaluations":        stats.RecentEvaluations,
		"TeachersWithoutThisMonth": stats.TeachersWithoutThisMonth,
		"AvgPlanning":              stats.AvgPlanning,
		"AvgClass":                 stats.AvgClass,
	}, "layouts/main_layout")
}

// DashboardData alimenta os gráficos da página inicial via fetch.
func (h *HomeHandler) DashboardData(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboardData()
	if err != nil {
		utils.Log.Error("API do painel: falha ao montar os dados", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "erro ao carregar os dados do painel",
		})
	}
	return c.JSON(data)
}
