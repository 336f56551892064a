package main

import (
	"os"
	"os/signal"
	"syscall"

	"acaodocente/bootstrap"
	"acaodocente/configs"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	utils.InitLogger()
	defer utils.SyncLogger()

	cfg := configs.Load()
	utils.SLog.Debugw("Configuração carregada", "env", cfg.Env, "port", cfg.Port)

	state, report := bootstrap.Run(cfg)

	for _, failed := range report.Failed() {
		utils.Log.Warn("Aplicação iniciando degradada",
			zap.String("step", failed.Name),
			zap.Error(failed.Err),
		)
	}

	if state.App == nil {
		utils.Log.Fatal("Aplicação web não pôde ser construída, abortando")
	}

	if state.DB != nil {
		defer func() {
			if err := configs.CloseDB(state.DB); err != nil {
				utils.Log.Error("Erro ao fechar a conexão com o banco de dados", zap.Error(err))
			}
		}()
	}

	startServer(state.App, cfg.Port)
}

func startServer(app *fiber.App, port string) {
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		address := ":" + port

		utils.Log.Info("Aplicação iniciando",
			zap.String("address", "http://localhost"+address),
			zap.String("port", port),
		)

		if err := app.Listen(address); err != nil {
			utils.Log.Fatal("Servidor não pôde escutar",
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}()

	<-shutdown
	utils.Log.Info("Sinal de encerramento recebido, finalizando...")

	if err := app.Shutdown(); err != nil {
		utils.Log.Error("Erro ao encerrar o servidor", zap.Error(err))
	} else {
		utils.Log.Info("Servidor encerrado com sucesso")
	}
}
