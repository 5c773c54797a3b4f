package agent

import (
	"context"
	"fmt"
	"time"

	ledger "github.com/dmelo/ledger"
	"github.com/dmelo/ledger/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator creates the expert that fronts the conversation and
// delegates to the others.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is here to understand his personal finances: his balance, where his money
			goes, and how his spending evolves over time.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Devise a plan of questions to ask each expert and come up with the best response to the user's request.
			Amounts are in the user's home currency unless stated otherwise.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert with function access to the accounting
// state.
func NewBookkeeper(as *ledger.AccountingSystem) *Expert {
	lib := []Function{summaryFunc(as), monthlyReportFunc(as)}
	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's ledger.
		He can report the current balance, the totals by category and the transactions of any month.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's ledger.
				You know how to use the Tools to extract relevant information about the user's finances.
				You are part of a team of experts, yours is everything about the user's transactions.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's finances
				  - the overall summary with balance and totals by category
				  - the detailed report of any month
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func summaryFunc(as *ledger.AccountingSystem) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary reports the user's current financial state: overall balance,
			income and expense totals, expenses broken down by category and the most recent transactions.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted dashboard of the user's finances.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Summary",
				Response: map[string]any{
					"output": renderer.NewSummary(as, 15).Markdown(),
				},
			}
		},
	}
}

func monthlyReportFunc(as *ledger.AccountingSystem) Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "MonthlyReport",
			Description: `MonthlyReport lists every transaction of one month with income, expense and net totals.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"year": {
						Type:        genai.TypeInteger,
						Description: "The year of the report, e.g. 2025.",
					},
					"month": {
						Type:        genai.TypeInteger,
						Description: "The month of the report, 1 to 12.",
					},
				},
				Required: []string{"year", "month"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of the month's transactions with totals.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			year, errY := intArg(args, "year")
			month, errM := intArg(args, "month")
			if errY != nil || errM != nil || month < 1 || month > 12 {
				return &genai.FunctionResponse{
					ID:   id,
					Name: "MonthlyReport",
					Response: map[string]any{
						"error": fmt.Sprintf("invalid year/month arguments: %v", args),
					},
				}
			}
			report := renderer.NewMonthly(as.Ledger, as.Categories, year, time.Month(month), as.HomeCurrency)
			return &genai.FunctionResponse{
				ID:   id,
				Name: "MonthlyReport",
				Response: map[string]any{
					"output": report.Markdown(),
				},
			}
		},
	}
}

// intArg reads an integer argument; the model sends numbers as float64.
func intArg(args map[string]any, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number but %T", name, v)
	}
}
