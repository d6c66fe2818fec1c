package agent

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"
)

// Expert is a chat with a model specialized by its system instruction and its tools.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
}

// Start creates the expert's chat.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert and returns its answer, running the function calls it
// makes on the way.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall == nil {
		return resp.Candidates[0].Content, nil
	}
	if e.Library == nil {
		return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
	}
	slog.Debug("function call", "expert", e.Name, "function", part0.FunctionCall.Name, "args", part0.FunctionCall.Args)
	// errors are reported to the expert in the response.
	fresp := e.Library(ctx, part0.FunctionCall)
	return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
}

// Declaration declares the expert as a function its facilitator can call.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"question": {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{"question"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call asks the question in args to the expert.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	question, ok := args["question"].(string)
	if !ok {
		return failure(id, e.Name, fmt.Errorf("invalid question, got %T, expected string", args["question"]))
	}

	response, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		return failure(id, e.Name, fmt.Errorf("something went wrong while calling the expert: %w", err))
	}

	answer := text(response)
	slog.Debug("expert answered", "expert", e.Name, "question", question, "answer", answer)
	return success(id, e.Name, answer)
}
