package calc

import "errors"

// Errores base del motor de cálculo. Los callers los traducen a respuestas
// HTTP; el motor nunca loguea ni formatea mensajes para el usuario.
var (
	// ErrInvalidInput indica montos negativos, duraciones no positivas o
	// porcentajes fuera de rango. Los handlers deberían validar antes de
	// invocar; el motor igual se defiende.
	ErrInvalidInput = errors.New("entrada inválida para el cálculo")

	// ErrInvalidRange indica un rango de fechas invertido o vacío.
	ErrInvalidRange = errors.New("rango de fechas inválido")
)
