package bootstrap

import (
	"fmt"

	"acaodocente/routes"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// healthResponse é serializada com os campos nesta ordem exata; monitores
// externos comparam o corpo byte a byte.
type healthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

type unhealthyResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// HealthHandler responde à sonda de disponibilidade. Não toca o banco de
// dados: o processo estar de pé é o único critério.
func HealthHandler(c *fiber.Ctx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			utils.Log.Error("Pânico no endpoint de saúde", zap.Any("panic", r))
			err = c.Status(fiber.StatusInternalServerError).JSON(unhealthyResponse{
				Status: "unhealthy",
				Error:  fmt.Sprint(r),
			})
		}
	}()

	return c.JSON(healthResponse{
		Status: "healthy",
		App:    "running",
	})
}

func attachHealth(s *State) error {
	if s.App == nil {
		return ErrNoApp
	}
	s.App.Get("/health", HealthHandler)
	s.App.Use(routes.RootRedirector)
	return nil
}
