package openai

import (
	"kineticmind/guidance/pkg/providers"
)

// ChatCompletionRequest is the OpenAI chat completions wire format.
type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// Message is a single chat message on the wire.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ResponseFormat constrains the completion output format.
type ResponseFormat struct {
	Type string `json:"type"`
}

// ChatCompletionResponse is the OpenAI chat completions response format.
type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion alternative.
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

// Usage reports token consumption for the request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// transformRequest converts the normalized completion request to the
// OpenAI wire format.
func transformRequest(req *providers.CompletionRequest) *ChatCompletionRequest {
	messages := make([]Message, 0, len(req.Messages))
	for _, msg := range req.Messages {
		messages = append(messages, Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	openaiReq := &ChatCompletionRequest{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.JSONObject {
		openaiReq.ResponseFormat = &ResponseFormat{Type: "json_object"}
	}

	return openaiReq
}

// transformResponse converts the OpenAI response to the normalized form.
// An empty choices array yields an empty Content, which the caller maps
// to its fallback value.
func transformResponse(resp *ChatCompletionResponse) *providers.CompletionResponse {
	normalized := &providers.CompletionResponse{
		ID:      resp.ID,
		Model:   resp.Model,
		Created: resp.Created,
		Usage: providers.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}

	if len(resp.Choices) > 0 {
		choice := resp.Choices[0]
		normalized.Content = choice.Message.Content
		normalized.FinishReason = choice.FinishReason
	}

	return normalized
}
