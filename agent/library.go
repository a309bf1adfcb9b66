package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Library resolves a function call issued by the model into its response.
type Library func(context.Context, *genai.FunctionCall) *genai.FunctionResponse

// Function is anything that can be handed to a model as a callable tool.
type Function interface {
	// Declaration describes the function to the model.
	Declaration() *genai.FunctionDeclaration
	// Call executes the function with the arguments chosen by the model.
	Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

// NewLibrary builds a Library dispatching calls to functions by name.
func NewLibrary[T Function](functions []T) Library {
	byName := make(map[string]T, len(functions))
	for _, fn := range functions {
		byName[fn.Declaration().Name] = fn
	}
	return func(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
		fn, ok := byName[call.Name]
		if !ok {
			return &genai.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: map[string]any{"error": fmt.Sprintf("unknown function %s", call.Name)},
			}
		}
		return fn.Call(ctx, call.ID, call.Args)
	}
}

// NewDeclaration collects the declarations of functions, ready to be set
// as a model's tools.
func NewDeclaration[T Function](functions []T) []*genai.FunctionDeclaration {
	decls := make([]*genai.FunctionDeclaration, 0, len(functions))
	for _, fn := range functions {
		decls = append(decls, fn.Declaration())
	}
	return decls
}
