package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrAccountNotFound     = errors.New("cuenta no encontrada")
	ErrCompanyNotFound     = errors.New("empresa no encontrada")
	ErrDuplicateEmail      = errors.New("el email ya está registrado")
	ErrEnterRecordNotFound = errors.New("no existe registro de entrada para esta empresa")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
)
