package factory

import (
	"fmt"

	"modern-assistant-be/pkg/llm"
	"modern-assistant-be/pkg/llm/gemini"
	"modern-assistant-be/pkg/llm/openai"
)

func NewLLMProvider(providerType, modelName, geminiApiKey, openaiApiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "gemini":
		if modelName == "" {
			modelName = "gemini-1.5-flash"
		}
		return gemini.NewGeminiProvider(geminiApiKey, modelName), nil
	case "openai":
		if modelName == "" {
			modelName = "gpt-4o-mini"
		}
		return openai.NewOpenAIProvider(openaiApiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
