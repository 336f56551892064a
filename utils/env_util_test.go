package utils

import "testing"

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("ENVTEST_STRING", "valor")
	if got := GetEnvWithDefault("ENVTEST_STRING", "padrão"); got != "valor" {
		t.Errorf("valor definido: got %q", got)
	}

	t.Setenv("ENVTEST_EMPTY", "")
	if got := GetEnvWithDefault("ENVTEST_EMPTY", "padrão"); got != "padrão" {
		t.Errorf("valor vazio deveria cair no padrão: got %q", got)
	}

	if got := GetEnvWithDefault("ENVTEST_MISSING", "padrão"); got != "padrão" {
		t.Errorf("variável ausente deveria cair no padrão: got %q", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("ENVTEST_INT", "42")
	if got := GetEnvAsInt("ENVTEST_INT", 7); got != 42 {
		t.Errorf("got %d, esperado 42", got)
	}

	t.Setenv("ENVTEST_INT_BAD", "quarenta")
	if got := GetEnvAsInt("ENVTEST_INT_BAD", 7); got != 7 {
		t.Errorf("valor inválido deveria cair no padrão: got %d", got)
	}

	if got := GetEnvAsInt("ENVTEST_INT_MISSING", 7); got != 7 {
		t.Errorf("variável ausente deveria cair no padrão: got %d", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	truthy := []string{"true", "True", "TRUE", "on", "1"}
	for _, value := range truthy {
		t.Setenv("ENVTEST_BOOL", value)
		if !GetEnvAsBool("ENVTEST_BOOL", false) {
			t.Errorf("%q deveria ser verdadeiro", value)
		}
	}

	falsy := []string{"false", "off", "0", "yes"}
	for _, value := range falsy {
		t.Setenv("ENVTEST_BOOL", value)
		if GetEnvAsBool("ENVTEST_BOOL", true) {
			t.Errorf("%q deveria ser falso", value)
		}
	}

	if !GetEnvAsBool("ENVTEST_BOOL_MISSING", true) {
		t.Error("variável ausente deveria cair no padrão")
	}
}
