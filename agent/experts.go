package agent

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/swr-analysis/swr"
	"github.com/swr-analysis/swr/docs"
	"github.com/swr-analysis/swr/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

func instruction(s string) *genai.Content {
	return &genai.Content{Parts: []*genai.Part{{Text: s}}}
}

func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: instruction(`
			As a facilitator you are in charge of the conversation and of solving the user's request.

			The user is planning a retirement funded by withdrawals from a portfolio, and wants
			to know which withdrawal rate, allocation and rebalancing strategy would have survived
			history.

			Learn about the experts' skills from the Tools and ask them questions.
			They keep the context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request. Quote figures from the experts, never invent them.
			`),
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert of market history, grounded with Google Search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert of financial history. It knows about past markets, crises,
		inflation episodes and the literature on safe withdrawal rates.
		Ask the Researcher to explain a figure or to put a period in context.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: instruction(`
			You are an expert of financial history and of retirement planning research.
			Leverage Google Search to ground your assertions.
			`),
		},
	}
}

// NewAnalyst returns an expert running simulations with sim. Parameters left out by
// the model are taken from base.
func NewAnalyst(sim swr.Simulator, base swr.Query, currency string) *Expert {
	lib := []Function{SimulateFunc(sim, base, currency), TopicFunc}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It runs historical simulations of retirements: for a
		portfolio, a withdrawal rate, a duration and a rebalancing strategy it knows the success
		rate and the terminal values. Ask the Analyst for any figure.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: instruction(`
			You are an analyst of safe withdrawal rates. Use the simulate tool to answer with
			figures, and run several simulations to compare alternatives.
			Use the topic tool to read the documentation of the tools you are based on.
			`),
		},
		Library: NewLibrary(lib),
	}
}

// SimulateFunc runs one simulation with sim.
func SimulateFunc(sim swr.Simulator, base swr.Query, currency string) *Func {
	const name = "simulate"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Simulates withdrawing a fixed percentage of a portfolio every year, for every
			retirement starting between the start and end years. Returns the success rate and the
			terminal values as a markdown table.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"portfolio": {
						Type:        genai.TypeString,
						Description: "Allocations in percent, such as us_stocks:60;us_bonds:40;. Known assets: " + fmt.Sprint(swr.DefaultSeries),
					},
					"withdrawal_rate": {Type: genai.TypeNumber, Description: "Yearly withdrawal rate in percent, such as 4."},
					"years":           {Type: genai.TypeInteger, Description: "Duration of the retirement in years."},
					"start":           {Type: genai.TypeInteger, Description: "First start year."},
					"end":             {Type: genai.TypeInteger, Description: "Last start year."},
					"rebalance":       {Type: genai.TypeString, Description: "Rebalancing: none, monthly, yearly or threshold."},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of the simulation results.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			q, err := queryArgs(base, args)
			if err != nil {
				return failure(id, name, err)
			}
			res, err := sim.Simulate(ctx, q)
			if err != nil {
				return failure(id, name, err)
			}
			return success(id, name, renderer.ResultsMarkdown(q, res, currency))
		},
	}
}

// queryArgs updates base with the arguments of a simulate call.
func queryArgs(base swr.Query, args map[string]any) (swr.Query, error) {
	q := base
	if v, ok := args["portfolio"]; ok {
		s, ok := v.(string)
		if !ok {
			return q, fmt.Errorf("argument 'portfolio' is not a string but %T", v)
		}
		p, err := swr.ParsePortfolio(s)
		if err != nil {
			return q, err
		}
		q.Portfolio = p
	}
	if v, ok := args["rebalance"]; ok {
		s, ok := v.(string)
		if !ok {
			return q, fmt.Errorf("argument 'rebalance' is not a string but %T", v)
		}
		r, err := swr.ParseRebalancing(s)
		if err != nil {
			return q, err
		}
		q.Rebalance = r
	}
	if v, ok := args["withdrawal_rate"]; ok {
		f, ok := v.(float64)
		if !ok {
			return q, fmt.Errorf("argument 'withdrawal_rate' is not a number but %T", v)
		}
		q.WithdrawalRate = decimal.NewFromFloat(f)
	}
	for key, dst := range map[string]*int{"years": &q.Years, "start": &q.Start, "end": &q.End} {
		v, ok := args[key]
		if !ok {
			continue
		}
		f, ok := v.(float64)
		if !ok {
			return q, fmt.Errorf("argument '%s' is not a number but %T", key, v)
		}
		*dst = int(f)
	}
	return q, q.Validate()
}

// TopicFunc reads the documentation.
var TopicFunc = &Func{
	Decl: &genai.FunctionDeclaration{
		Name:        "topic",
		Description: "Reads a topic of the swa documentation. Use '*' to read every topic.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {Type: genai.TypeString, Description: "The topic, one of convert, conventions, changes, balance or '*'."},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "The topic in markdown."},
	},
	Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
		topic, _ := args["topic"].(string)
		content, err := docs.GetTopic(topic)
		if err != nil {
			return failure(id, "topic", err)
		}
		return success(id, "topic", content)
	},
}
