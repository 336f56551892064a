package bootstrap

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"acaodocente/configs"
	"acaodocente/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger()
	m.Run()
}

func testConfig(t *testing.T) configs.AppConfig {
	t.Helper()
	dir := t.TempDir()
	return configs.AppConfig{
		Env:           "test",
		Port:          "5000",
		SessionSecret: "segredo-de-teste",
		DatabaseURL:   dir + "/boot_test.db",
		UploadDir:     dir + "/uploads",
		MaxUploadMB:   16,
	}
}

func TestRunStepsContinuesAfterFailure(t *testing.T) {
	var order []string
	failErr := errors.New("etapa quebrada")

	steps := []Step{
		{Name: "primeira", Run: func(s *State) error {
			order = append(order, "primeira")
			return nil
		}},
		{Name: "quebrada", Run: func(s *State) error {
			order = append(order, "quebrada")
			return failErr
		}},
		{Name: "última", Run: func(s *State) error {
			order = append(order, "última")
			return nil
		}},
	}

	state := &State{}
	report := runSteps(state, steps)

	if len(order) != 3 {
		t.Fatalf("executou %d etapas, esperava as 3 mesmo com falha no meio", len(order))
	}
	if order[2] != "última" {
		t.Errorf("a última etapa não rodou após a falha: %v", order)
	}

	failed := report.Failed()
	if len(failed) != 1 {
		t.Fatalf("report registrou %d falhas, esperava 1", len(failed))
	}
	if failed[0].Name != "quebrada" {
		t.Errorf("falha registrada na etapa %q, esperava %q", failed[0].Name, "quebrada")
	}
	if !errors.Is(failed[0].Err, failErr) {
		t.Errorf("erro registrado = %v, esperava %v", failed[0].Err, failErr)
	}
	if report.Ok() {
		t.Error("report.Ok() deveria ser falso com uma etapa quebrada")
	}
}

func TestRunCompletesAllStepsOnLocalDatabase(t *testing.T) {
	state, report := Run(testConfig(t))

	if len(report.Steps) != len(Steps()) {
		t.Fatalf("report tem %d etapas, esperava %d", len(report.Steps), len(Steps()))
	}
	if !report.Ok() {
		for _, failed := range report.Failed() {
			t.Errorf("etapa %q falhou: %v", failed.Name, failed.Err)
		}
		t.Fatal("todas as etapas deveriam concluir em um banco local")
	}

	if state.App == nil {
		t.Error("a aplicação web deveria estar construída")
	}
	if state.DB == nil {
		t.Error("o banco de dados deveria estar conectado")
	}
	if configs.IsPostgresDSN(state.DSN) {
		t.Errorf("DSN resolvido %q não deveria ser Postgres", state.DSN)
	}
}

func TestHealthEndpointBody(t *testing.T) {
	state, _ := Run(testConfig(t))
	if state.App == nil {
		t.Fatal("aplicação web não construída")
	}

	resp, err := state.App.Test(httptest.NewRequest("GET", "/health", nil))
	if err != nil {
		t.Fatalf("requisição de teste falhou: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		t.Fatalf("status = %d, esperava 200", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("leitura do corpo falhou: %v", err)
	}

	const want = `{"status":"healthy","app":"running"}`
	if string(body) != want {
		t.Errorf("corpo = %s, esperava exatamente %s", body, want)
	}
}
