package agent

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

// maxToolRounds bounds the tool-call loop so a misbehaving model cannot spin
// the turn forever.
const maxToolRounds = 5

// OpenAIClient is the production agent backed by the OpenAI chat completion
// API with function calling.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewOpenAIClient constructs an OpenAI-backed agent client.
func NewOpenAIClient(apiKey, model string, temperature float64) *OpenAIClient {
	return &OpenAIClient{
		client:      openai.NewClient(apiKey),
		model:       model,
		temperature: float32(temperature),
	}
}

// toolArgs is the single-string-argument schema shared by all five tools.
type toolArgs struct {
	Text string `json:"text"`
}

func toolDefinitions(tools *Toolset) []openai.Tool {
	params := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"text": {
				Type:        jsonschema.String,
				Description: "Free-text input for the tool.",
			},
		},
		Required: []string{"text"},
	}

	var defs []openai.Tool
	for _, name := range tools.Names() {
		t, _ := tools.Get(name)
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		})
	}
	return defs
}

// Invoke sends the conversation to the model and runs the tool-call loop
// until the model produces a final text reply. The model decides which tools
// to call; unknown tool names abort the turn.
func (c *OpenAIClient) Invoke(ctx context.Context, turns []Turn, tools *Toolset) (string, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		role := turn.Role
		switch role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			role = RoleUser
		}
		msgs = append(msgs, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}

	defs := toolDefinitions(tools)

	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    msgs,
			Temperature: c.temperature,
			Tools:       defs,
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("empty completion response")
		}

		choice := resp.Choices[0].Message
		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		msgs = append(msgs, choice)
		for _, tc := range choice.ToolCalls {
			var args toolArgs
			if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
				return "", fmt.Errorf("decode arguments for tool %s: %w", tc.Function.Name, err)
			}
			result, err := tools.Call(tc.Function.Name, args.Text)
			if err != nil {
				return "", err
			}
			msgs = append(msgs, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: tc.ID,
			})
		}
	}

	return "", fmt.Errorf("model did not produce a final reply after %d tool rounds", maxToolRounds)
}
