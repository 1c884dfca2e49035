package dto

// AIConfigResponse proveedores configurados (sin exponer las claves).
type AIConfigResponse struct {
	HasOpenAIKey    bool   `json:"has_openai_key"`
	HasAnthropicKey bool   `json:"has_anthropic_key"`
	Provider        string `json:"provider"`
}

// InterpretRequest texto libre del usuario.
type InterpretRequest struct {
	Prompt string `json:"prompt"`
}

// InterpretResponse prompt normalizado.
type InterpretResponse struct {
	NormalizedPrompt string `json:"normalized_prompt"`
	Provider         string `json:"provider"`
}
