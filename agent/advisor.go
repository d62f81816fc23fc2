package agent

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/etnz/econ"
	"github.com/etnz/econ/docs"
	"github.com/etnz/econ/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			The user is evaluating whether an energy project (insulation, heat pump, solar panels,
			a new boiler...) is worth its cost.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Never compute financial figures yourself, ask the Analyst. When the user gives
			incomplete figures, tell them which defaults were assumed.
			Answer in markdown, with short tables when comparing options.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst returns the expert in charge of evaluating projects with the
// econ engine.
func NewAnalyst(currency string) *Expert {
	lib := []Function{AnalyzeProject(currency), Documentation}
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. It evaluates the cost-effectiveness of an energy project
		from its initial cost, life, first year savings, savings escalation, inflation and discount rate.
		It computes the rate of return, net present value, benefit/cost ratio, payback and cumulative cash flow.
		Ask the Analyst for every figure about a project, with all the inputs you know.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a financial analyst specialized in energy projects.
				You use the Tools to evaluate projects, never your own arithmetic.
				Read the documentation when you need to explain a measure.
				Report the inputs you used along with the results.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// inputParams maps the AnalyzeProject parameters to their description.
var inputParams = []struct {
	name, description string
}{
	{"initial_cost", "Cost of the project incurred at year 0."},
	{"life_years", fmt.Sprintf("Number of years the project is evaluated over, from 1 to %d.", econ.MaxLifeYears)},
	{"first_year_savings", "Net savings or revenue of the first year."},
	{"savings_escalation_pct", "How much faster than inflation the savings grow, in percent per year. Can be negative."},
	{"general_inflation_pct", "Average general inflation over the project life, in percent per year."},
	{"discount_rate_pct", "Real discount rate, above general inflation, in percent per year."},
}

// AnalyzeProject returns the function that evaluates a project.
func AnalyzeProject(currency string) *Func {
	properties := make(map[string]*genai.Schema)
	for _, p := range inputParams {
		properties[p.name] = &genai.Schema{Type: genai.TypeNumber, Description: p.description}
	}
	properties["life_years"].Type = genai.TypeInteger

	d := econ.DefaultInputs()
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "AnalyzeProject",
			Description: fmt.Sprintf(`AnalyzeProject evaluates an energy project and returns a markdown report.

			Missing parameters take their default value: initial cost %v, life %v years, first year savings %v,
			escalation %v%%, inflation %v%%, discount rate %v%%.`,
				d.InitialCost, d.LifeYears, d.FirstYearSavings, d.SavingsEscalationPct, d.GeneralInflationPct, d.DiscountRatePct),
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: properties,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown report with the inputs, the results and the year by year cash flow.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			in, err := parseInputs(args)
			if err != nil {
				return errorResponse(id, "AnalyzeProject", err)
			}
			a, err := econ.Analyze(in)
			if err != nil {
				return errorResponse(id, "AnalyzeProject", err)
			}
			md := renderer.AnalysisMarkdown(a, renderer.ReportOptions{Currency: currency, SkipChart: true, SkipNotes: true})
			return outputResponse(id, "AnalyzeProject", md)
		},
	}
}

// parseInputs reads the project inputs from function call arguments.
func parseInputs(args map[string]any) (econ.ProjectInputs, error) {
	in := econ.DefaultInputs()
	fields := map[string]*float64{
		"initial_cost":           &in.InitialCost,
		"first_year_savings":     &in.FirstYearSavings,
		"savings_escalation_pct": &in.SavingsEscalationPct,
		"general_inflation_pct":  &in.GeneralInflationPct,
		"discount_rate_pct":      &in.DiscountRatePct,
	}
	for name, v := range args {
		f, err := number(name, v)
		if err != nil {
			return in, err
		}
		if name == "life_years" {
			if f != math.Trunc(f) {
				return in, fmt.Errorf("argument 'life_years' must be a whole number of years, got %v", f)
			}
			in.LifeYears = int(f)
			continue
		}
		field, ok := fields[name]
		if !ok {
			return in, fmt.Errorf("unknown argument %q", name)
		}
		*field = f
	}
	return in, in.Validate()
}

func number(name string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("argument %q is not a number as expected but %T", name, v)
	}
}

// Documentation returns documentation topics about the measures and inputs.
var Documentation = &Func{
	Decl: &genai.FunctionDeclaration{
		Name: "Documentation",
		Description: `Documentation returns the user manual on a topic, in markdown.

		Available topics: ` + strings.Join(must(docs.GetAllTopics()), ", ") + `.`,
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topic": {Type: genai.TypeString, Description: "The topic to read."},
			},
			Required: []string{"topic"},
		},
		Response: &genai.Schema{Type: genai.TypeString, Description: "The markdown content of the topic."},
	},
	Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
		topic, ok := args["topic"].(string)
		if !ok {
			return errorResponse(id, "Documentation", fmt.Errorf("argument 'topic' is not a string as expected but %T", args["topic"]))
		}
		content, err := docs.GetTopic(topic)
		if err != nil {
			return errorResponse(id, "Documentation", err)
		}
		return outputResponse(id, "Documentation", content)
	},
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
