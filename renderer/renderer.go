// Package renderer presents project analyses as markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/econ"
)

//go:embed templates/*.md
var templates embed.FS

// ReportOptions holds configuration for rendering an analysis report.
type ReportOptions struct {
	Currency     string // Currency is the ISO 4217 code used for cash values. Defaults to USD.
	SkipChart    bool   // Do not render the cumulative cash flow chart.
	SkipCashFlow bool   // Do not render the year by year cash flow table.
	SkipNotes    bool   // Do not render the explanation of each measure.
}

// AnalysisMarkdown renders the analysis of a project to a markdown string.
func AnalysisMarkdown(a *econ.Analysis, opts ReportOptions) string {
	return RenderReport(NewReport(a, opts.Currency), opts)
}

// RenderReport renders the Report struct to a markdown string.
func RenderReport(r *Report, opts ReportOptions) string {
	partials := map[string]string{
		"analysis_title":    "analysis_title.md",
		"analysis_inputs":   "analysis_inputs.md",
		"analysis_results":  "analysis_results.md",
		"analysis_chart":    "analysis_chart.md",
		"analysis_cashflow": "analysis_cashflow.md",
		"analysis_notes":    "analysis_notes.md",
	}
	// An empty file name results in an empty section.
	if opts.SkipChart {
		partials["analysis_chart"] = ""
	}
	if opts.SkipCashFlow {
		partials["analysis_cashflow"] = ""
	}
	if opts.SkipNotes {
		partials["analysis_notes"] = ""
	}
	return renderTemplate("analysis", "analysis.md", partials, r)
}

// CashFlowMarkdown renders only the year by year cash flow table.
func CashFlowMarkdown(a *econ.Analysis, currency string) string {
	partials := map[string]string{
		"analysis_title":    "analysis_title.md",
		"analysis_cashflow": "analysis_cashflow.md",
	}
	return renderTemplate("cashflow", "cashflow.md", partials, NewReport(a, currency))
}

// ComparisonMarkdown renders the side by side comparison of scenarios.
func ComparisonMarkdown(c *Comparison) string {
	return renderTemplate("comparison", "comparison.md", nil, c)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		if file != "" {
			content, err = fs.ReadFile(templates, "templates/"+file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
