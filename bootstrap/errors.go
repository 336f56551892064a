package bootstrap

import "errors"

// Erros das etapas que dependem de uma etapa anterior que falhou.
var (
	ErrNoApp      = errors.New("aplicação web não construída")
	ErrNoDatabase = errors.New("banco de dados não conectado")
)
