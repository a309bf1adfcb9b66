package agent

import (
	"context"
	"fmt"

	"github.com/nboran/wealth"
	"github.com/nboran/wealth/docs"
	"github.com/nboran/wealth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator builds the expert that talks to the user and has the
// other experts as its tools.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Never exposed as a tool, so no description.
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the experts' skills from the Tools and ask them questions.
			Each expert keeps the context of your previous questions, so you can follow up.

			The user is here primarily to understand their wealth: what their assets
			are worth, how they grew, and whether they are on track for their goals.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume you already know their ledger, ask the Analyst first to understand what they own.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert in charge of reading the wealth ledger.
func NewAnalyst() *Expert {

	lib := []Function{
		reportFunc("Summary", `Summary renders the wealth summary on a given day: net asset
		value, monthly salary, wealth index, and a table of every asset and
		asset type with value, contributions and growth.`, renderer.Summary),
		reportFunc("Assets", `Assets renders the detail of every asset on a given day: type,
		opening date, units, value, growth, and the full list of deposits
		and withdrawals.`, renderer.Assets),
		reportFunc("Years", `Years renders the yearly review on a given day: for every year
		the start and end values, the growth split between contributions and
		the assets' own performance, and progress against the year goals.`, renderer.Years),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst, in charge of reading the user's wealth ledger.
		The Analyst can derive the figures on any date: net asset value, per-asset
		histories, growth decompositions and yearly reviews.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the analyst in charge of the user's wealth ledger.
				You know how to use the Tools to derive the relevant figures on any date.
				You are part of a team of experts, yours is everything recorded in the ledger.
				They might ask approximative questions, pardon their language and figure out what they meant.

				Use the available tools to get information about the user's wealth
				  - the summary with net asset value, wealth index and asset types
				  - the per-asset detail with every movement
				  - the yearly reviews
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewPlanner returns the expert in charge of goals and long-term projections.
func NewPlanner() *Expert {

	lib := []Function{
		reportFunc("WealthIndex", `WealthIndex renders the wealth index history on a given day,
		with the declared index goals and the trajectory towards them.`, renderer.WealthIndex),
		reportFunc("MoneyLifetime", `MoneyLifetime renders the money lifetime scenarios on a given
		day: how long the net assets would last under the declared withdrawal,
		inflation and growth assumptions.`, renderer.Lifetimes),
		topicFunc,
	}

	return &Expert{
		Name: "Planner",
		Description: `This is the Planner, in charge of goals and long-term projections:
		the wealth index, the declared goals, and the money lifetime simulation.
		Ask the Planner anything about where the user is heading.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the planner in charge of the user's goals and long-term projections.
				You reason about the wealth index, the declared goals and the money lifetime
				simulation, all derived from the ledger through the Tools.
				The documentation topics explain the concepts, read one before explaining it.

				When the user wonders about the future, ground your answer in the
				simulations from the Tools rather than inventing figures.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewEconomist returns the expert grounding answers in current economic data.
func NewEconomist() *Expert {
	return &Expert{
		Name: "Economist",
		Description: `This is the Economist, well aware of inflation, interest rates and
		market conditions, and of the latest financial news. Ask the Economist
		whenever you need recent or grounding information from outside the ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an economist. You can search and find anything related to inflation,
			interest rates, markets and financial institutions. You leverage Google Search
			to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// Func adapts a declaration and a closure into a Function.
type Func struct {
	Decl *genai.FunctionDeclaration
	Do   func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Do(ctx, id, args)
}

// must panics on error. The embedded docs are known good at build time.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// reportFunc builds a Function that derives the report on the requested
// date and renders one markdown document from it.
func reportFunc(name, description string, render func(*wealth.Report) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The date on which to derive the report. Today is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted document derived from the ledger.",
			},
		},
		Do: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{}}

			on, err := parseDate(args)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			report, err := reportOn(on)
			if err != nil {
				fresp.Response["error"] = err.Error()
				return fresp
			}
			fresp.Response["output"] = render(report)
			return fresp
		},
	}
}

// topicFunc serves the embedded documentation topics.
var topicFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Topic",
		Description: `Topic returns the user documentation about one concept of the wealth
		tracker: the event kinds, the date formats, the wealth index, the goals
		or the money lifetime simulation.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"name": {
					Type: genai.TypeString,
					Description: `The topic name, or "*" for all topics. The readme lists them:

					` + must(docs.GetTopic("readme")),
				},
			},
			Required: []string{"name"},
		},
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The topic content in markdown.",
		},
	},
	Do: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		fresp := &genai.FunctionResponse{ID: id, Name: "Topic", Response: map[string]any{}}

		name, ok := args["name"].(string)
		if !ok {
			fresp.Response["error"] = fmt.Sprintf("argument 'name' is not a string as expected but %T", args["name"])
			return fresp
		}
		topic, err := docs.GetTopic(name)
		if err != nil {
			fresp.Response["error"] = err.Error()
			return fresp
		}
		fresp.Response["output"] = topic
		return fresp
	},
}

// parseDate reads the optional 'date' argument, defaulting to today.
func parseDate(args map[string]any) (wealth.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return wealth.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return wealth.Date{}, fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}

	date, err := wealth.ParseDate(sdate)
	if err != nil {
		return wealth.Date{}, fmt.Errorf("argument 'date' must be a valid date got %q: %w\n\n%s", sdate, err, must(docs.GetTopic("dates")))
	}
	return date, nil
}

// reportOn loads the default ledger file and derives the report on that
// day, denominated in the same default currency as the command line.
func reportOn(on wealth.Date) (*wealth.Report, error) {
	ledger, err := wealth.LoadLedger(wealth.DefaultLedgerFile)
	if err != nil {
		return nil, err
	}
	ledger.SetCurrency("EUR")
	return ledger.NewReport(on)
}
