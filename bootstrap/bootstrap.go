package bootstrap

import (
	"os"
	"time"

	"acaodocente/configs"
	"acaodocente/database"
	"acaodocente/database/seeders"
	"acaodocente/routes"
	"acaodocente/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// State acumula o que cada etapa da inicialização produz. A configuração
// entra pronta; app, banco e sessão são preenchidos pelas etapas.
type State struct {
	Config configs.AppConfig

	App *fiber.App
	DSN string
	DB  *gorm.DB
}

// Step é uma etapa nomeada da inicialização.
type Step struct {
	Name string
	Run  func(*State) error
}

// StepResult registra o desfecho de uma etapa.
type StepResult struct {
	Name     string
	Err      error
	Duration time.Duration
}

// Report é o resultado agregado da inicialização.
type Report struct {
	Steps []StepResult
}

// Failed lista as etapas que terminaram em erro.
func (r *Report) Failed() []StepResult {
	var failed []StepResult
	for _, step := range r.Steps {
		if step.Err != nil {
			failed = append(failed, step)
		}
	}
	return failed
}

// Ok indica se todas as etapas concluíram sem erro.
func (r *Report) Ok() bool {
	return len(r.Failed()) == 0
}

// Steps devolve a sequência padrão de inicialização, na ordem de execução.
func Steps() []Step {
	return []Step{
		{Name: "aplicação web", Run: buildApp},
		{Name: "resolução do banco de dados", Run: resolveDatabase},
		{Name: "conexão com o banco de dados", Run: openDatabase},
		{Name: "verificação do banco de dados", Run: pingDatabase},
		{Name: "criação das tabelas", Run: migrateTables},
		{Name: "usuário administrador", Run: seedAdminUser},
		{Name: "sessões e e-mail", Run: configureSession},
		{Name: "diretório de uploads", Run: ensureUploadDir},
		{Name: "registro das rotas", Run: attachRoutes},
		{Name: "endpoint de saúde", Run: attachHealth},
	}
}

// Run executa as etapas em ordem. Uma etapa que falha é registrada no log e
// no Report, e a inicialização segue para a próxima: o processo sobe mesmo
// degradado, e cabe ao chamador inspecionar o Report.
func Run(cfg configs.AppConfig) (*State, *Report) {
	state := &State{Config: cfg}
	return state, runSteps(state, Steps())
}

func runSteps(state *State, steps []Step) *Report {
	report := &Report{}

	for _, step := range steps {
		start := time.Now()
		err := step.Run(state)
		elapsed := time.Since(start)

		report.Steps = append(report.Steps, StepResult{
			Name:     step.Name,
			Err:      err,
			Duration: elapsed,
		})

		if err != nil {
			utils.Log.Error("Etapa de inicialização falhou, continuando",
				zap.String("step", step.Name),
				zap.Duration("duration", elapsed),
				zap.Error(err),
			)
			continue
		}

		utils.Log.Info("Etapa de inicialização concluída",
			zap.String("step", step.Name),
			zap.Duration("duration", elapsed),
		)
	}

	return report
}

func buildApp(s *State) error {
	engine := html.New("./views", ".html")
	engine.AddFuncMap(utils.TemplateHelpers())

	app := fiber.New(fiber.Config{
		Views:       engine,
		AppName:     "Ação Docente",
		BodyLimit:   s.Config.MaxUploadMB * 1024 * 1024,
		ProxyHeader: fiber.HeaderXForwardedFor,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal Server Error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
			}

			utils.Log.Error("Fiber request error",
				zap.Error(err),
				zap.Int("status_code", code),
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)

			return c.Status(code).JSON(fiber.Map{"error": message})
		},
	})

	app.Static("/", "./public")
	app.Use(encryptcookie.New(encryptcookie.Config{
		Key:    s.Config.CookieKey(),
		Except: []string{"csrf_token"},
	}))

	s.App = app
	return nil
}

func resolveDatabase(s *State) error {
	s.DSN = configs.ResolveDatabaseDSN(s.Config.DatabaseURL)
	if !configs.IsPostgresDSN(s.DSN) {
		utils.Log.Warn("DATABASE_URL ausente ou não reconhecida, usando SQLite local",
			zap.String("path", s.DSN),
		)
	}
	return nil
}

func openDatabase(s *State) error {
	db, err := configs.OpenDB(s.DSN)
	if err != nil {
		return err
	}
	s.DB = db
	return nil
}

func pingDatabase(s *State) error {
	if s.DB == nil {
		return ErrNoDatabase
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func migrateTables(s *State) error {
	if s.DB == nil {
		return ErrNoDatabase
	}
	return database.RunMigrationsInOrder(s.DB)
}

func seedAdminUser(s *State) error {
	if s.DB == nil {
		return ErrNoDatabase
	}
	created, err := seeders.EnsureAdminUser(s.DB)
	if err != nil {
		return err
	}
	if created {
		utils.SLog.Info("Usuário administrador criado")
	} else {
		utils.SLog.Debug("Usuário administrador já existente, nada a fazer")
	}
	return nil
}

func configureSession(s *State) error {
	store := configs.NewSessionStore(s.DSN)
	utils.InitializeSessionStore(store)

	if s.Config.Mail.Username == "" {
		utils.SLog.Debug("Servidor de e-mail sem credenciais, envio desabilitado")
	}
	return nil
}

func ensureUploadDir(s *State) error {
	return os.MkdirAll(s.Config.UploadDir, 0o755)
}

func attachRoutes(s *State) error {
	if s.App == nil {
		return ErrNoApp
	}
	if s.DB == nil {
		return ErrNoDatabase
	}
	s.App.Use(configs.SetupCSRF())
	routes.SetupRoutes(s.App, s.DB, s.Config)
	return nil
}
