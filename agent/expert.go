package agent

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// questionParam is the single argument every expert takes when exposed as a
// tool to the facilitator.
const questionParam = "question"

// Expert is a chat with a specialist the facilitator can consult.
type Expert struct {
	Name        string
	Description string
	ModelName   string
	Config      *genai.GenerateContentConfig
	Library     Library
	chat        *genai.Chat
}

// Start creates the underlying chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask sends parts to the expert's chat, resolving function calls through the
// expert's library until the model produces a final answer.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	for {
		resp, err := e.chat.Send(ctx, parts...)
		if err != nil {
			return nil, err
		}
		if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
			return nil, fmt.Errorf("no response from expert %s", e.Name)
		}
		content := resp.Candidates[0].Content
		call := content.Parts[0].FunctionCall
		if call == nil {
			return content, nil
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		// Errors travel inside the function response, not as err, so the
		// model can see them and react.
		parts = []*genai.Part{{FunctionResponse: e.Library(ctx, call)}}
	}
}

// Declaration exposes the expert as a tool the facilitator can call, a
// single question in, a single answer out.
func (e *Expert) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        e.Name,
		Description: e.Description,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				questionParam: {
					Type:        genai.TypeString,
					Description: "The question to ask the expert.",
				},
			},
			Required: []string{questionParam},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "Expert's response.",
		},
	}
}

// Call answers one question from the facilitator by relaying it to the
// expert's chat.
func (e *Expert) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       id,
		Name:     e.Name,
		Response: map[string]any{},
	}

	question, ok := args[questionParam].(string)
	if !ok {
		fresp.Response["error"] = fmt.Sprintf("invalid type got %T, expected string", args[questionParam])
		return fresp
	}

	answer, err := e.Ask(ctx, &genai.Part{Text: question})
	if err != nil {
		fresp.Response["error"] = fmt.Sprintf("asking expert %s: %v", e.Name, err)
		return fresp
	}

	text := answer.Parts[0].Text
	log.Printf("Expert %q:\n    Q: %q\n    A: %q", e.Name, question, text)
	fresp.Response["output"] = text
	return fresp
}
