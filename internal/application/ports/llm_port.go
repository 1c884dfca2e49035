package ports

import "context"

// PromptNormalizer define el puerto de salida para normalizar comandos de diseño en texto libre.
// Cualquier adaptador (OpenAI, Anthropic, heurística local, mock) debe implementar esta interfaz.
// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
type PromptNormalizer interface {
	// NormalizePrompt corrige ortografía y unifica verbos (create/add/move/paint/set) en una frase corta.
	NormalizePrompt(ctx context.Context, prompt string) (string, error)
	// Provider nombre estable del proveedor para logs y /api/ai/config.
	Provider() string
}
