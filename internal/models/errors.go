package models

import "errors"

// Error taxonomy for the analysis pipeline. Handlers map these to HTTP
// statuses with errors.Is; everything else is treated as an internal fault.
var (
	// User-correctable input problems (4xx).
	ErrEmptyText         = errors.New("texto não foi fornecido")
	ErrUnsupportedFormat = errors.New("formato do arquivo não suportado")
	ErrEmptyDocument     = errors.New("o arquivo está vazio ou contém texto ilegível")
	ErrFileTooLarge      = errors.New("tamanho do arquivo excede o máximo suportado (5mb)")

	// Operator faults (5xx).
	ErrMissingAPIKey = errors.New("OPENAI_API_KEY não configurada")
	ErrUpstream      = errors.New("falha ao consultar o modelo")
)
