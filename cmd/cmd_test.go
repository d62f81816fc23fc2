package cmd

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/etnz/econ/insee"
	"github.com/google/subcommands"
)

// zeroRates are the flags of a project with no escalation, inflation or discount.
var zeroRates = []string{"-escalation", "0", "-inflation", "0", "-discount", "0"}

// run executes the command line args and returns what it printed.
func run(t *testing.T, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	var b bytes.Buffer
	old := stdout
	stdout = &b
	defer func() { stdout = old }()

	fs := flag.NewFlagSet("econ", flag.ContinueOnError)
	c := subcommands.NewCommander(fs, "econ")
	Register(c)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parsing %v: %v", args, err)
	}
	status := c.Execute(context.Background())
	return b.String(), status
}

func args(base []string, more ...string) []string {
	return append(append([]string{}, base...), more...)
}

func TestAnalyze_Query(t *testing.T) {
	testCases := []struct {
		query string
		want  string
	}{
		{"$.npv", "1000"},
		{"$.break_even", "10"},
		{"$.simple_payback", "10"},
		{"$.bc_ratio", "2"},
		{"$.inputs.life_years", "20"},
		{"$.years[20].cumulative", "1000"},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			cl := append([]string{"analyze", "-cost", "1000", "-life", "20", "-savings", "100", "-q", tc.query}, zeroRates...)
			out, status := run(t, cl...)
			if status != subcommands.ExitSuccess {
				t.Fatalf("analyze failed with status %v", status)
			}
			if got := strings.TrimSpace(out); got != tc.want {
				t.Errorf("analyze -q %s = %q, want %q", tc.query, got, tc.want)
			}
		})
	}
}

func TestAnalyze_Formats(t *testing.T) {
	out, status := run(t, "analyze", "-format", "md", "-no-notes")
	if status != subcommands.ExitSuccess {
		t.Fatalf("analyze failed with status %v", status)
	}
	for _, want := range []string{"# Energy Project Economics", "## Results", "## Cumulative Cash Flow", "| Rate of Return |"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown does not contain %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "## Notes") {
		t.Errorf("markdown contains the notes despite -no-notes:\n%s", out)
	}

	out, status = run(t, "analyze", "-format", "html")
	if status != subcommands.ExitSuccess {
		t.Fatalf("analyze -format html failed with status %v", status)
	}
	if !strings.Contains(out, "<table>") || !strings.Contains(out, "<h1>") {
		t.Errorf("html output has no table or title:\n%s", out)
	}

	out, status = run(t, "analyze", "-format", "json", "-life", "5")
	if status != subcommands.ExitSuccess {
		t.Fatalf("analyze -format json failed with status %v", status)
	}
	var doc map[string]any
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	for _, key := range []string{"inputs", "irr", "npv", "bc_ratio", "simple_payback", "years"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("json output has no %q key:\n%s", key, out)
		}
	}
	if years, _ := doc["years"].([]any); len(years) != 6 {
		t.Errorf("json output has %d years, want 6", len(years))
	}
}

func TestAnalyze_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
	}{
		{"invalid life", []string{"analyze", "-life", "0"}},
		{"too long life", []string{"analyze", "-life", "51"}},
		{"negative cost", []string{"analyze", "-cost", "-1"}},
		{"unknown format", []string{"analyze", "-format", "xml"}},
		{"bad query", []string{"analyze", "-q", "$.["}},
		{"missing file", []string{"analyze", "-f", "does-not-exist.yaml"}},
		{"unknown flag", []string{"analyze", "-tax", "20"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, status := run(t, tc.args...); status != subcommands.ExitUsageError {
				t.Errorf("%v: got status %v, want %v", tc.args, status, subcommands.ExitUsageError)
			}
		})
	}
}

func TestAnalyze_ProjectFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "project.yaml")
	content := "initial_cost: 1000\nlife_years: 10\nfirst_year_savings: 200\nsavings_escalation_pct: 0\ngeneral_inflation_pct: 0\ndiscount_rate_pct: 0\n"
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _ := run(t, "analyze", "-f", file, "-q", "$.simple_payback")
	if got := strings.TrimSpace(out); got != "5" {
		t.Errorf("payback from file = %q, want 5", got)
	}
	// flags override the file
	out, _ = run(t, "analyze", "-f", file, "-savings", "100", "-q", "$.simple_payback")
	if got := strings.TrimSpace(out); got != "10" {
		t.Errorf("payback with -savings = %q, want 10", got)
	}
	out, _ = run(t, "analyze", "-f", file, "-q", "$.inputs.life_years")
	if got := strings.TrimSpace(out); got != "10" {
		t.Errorf("life from file = %q, want 10", got)
	}
}

func TestCashflow(t *testing.T) {
	base := args(zeroRates, "-cost", "1000", "-life", "2", "-savings", "600")

	out, status := run(t, args([]string{"cashflow", "-format", "csv"}, base...)...)
	if status != subcommands.ExitSuccess {
		t.Fatalf("cashflow failed with status %v", status)
	}
	want := "year,savings,cash_flow,discounted,cumulative\n" +
		"0,0.00,-1000.00,-1000.00,-1000.00\n" +
		"1,600.00,600.00,600.00,-400.00\n" +
		"2,600.00,600.00,600.00,200.00\n"
	if out != want {
		t.Errorf("cashflow csv:\ngot:\n%s\nwant:\n%s", out, want)
	}

	out, _ = run(t, args([]string{"cashflow", "-format", "md"}, base...)...)
	if !strings.Contains(out, "| 2 | $600 | $600 | $600 | $200 |") {
		t.Errorf("cashflow md misses year 2:\n%s", out)
	}

	out, _ = run(t, args([]string{"cashflow", "-format", "json"}, base...)...)
	var years []map[string]float64
	if err := json.Unmarshal([]byte(out), &years); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if len(years) != 3 || years[2]["cumulative"] != 200 {
		t.Errorf("cashflow json = %v", years)
	}

	if _, status := run(t, "cashflow", "-format", "html"); status != subcommands.ExitUsageError {
		t.Errorf("cashflow -format html: got status %v, want usage error", status)
	}
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scenarios.jsonl")
	content := `# two options
{"name":"heat pump","initial_cost":12000,"first_year_savings":900}

{"name":"insulation","initial_cost":4000,"first_year_savings":350,"life_years":30}
`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, status := run(t, "compare", "-format", "md", file)
	if status != subcommands.ExitSuccess {
		t.Fatalf("compare failed with status %v", status)
	}
	for _, want := range []string{"heat pump", "insulation", "Net Present Value"} {
		if !strings.Contains(out, want) {
			t.Errorf("comparison does not contain %q:\n%s", want, out)
		}
	}

	out, _ = run(t, "compare", "-format", "json", file)
	var results []struct {
		Name     string         `json:"name"`
		Analysis map[string]any `json:"analysis"`
	}
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("invalid json output: %v\n%s", err, out)
	}
	if len(results) != 2 || results[1].Name != "insulation" {
		t.Errorf("compare json = %+v", results)
	}

	bad := filepath.Join(dir, "bad.jsonl")
	if err := os.WriteFile(bad, []byte(`{"name":"short","life_years":0}`+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, status := run(t, "compare", bad); status != subcommands.ExitFailure {
		t.Errorf("compare with invalid scenario: got status %v, want failure", status)
	}
	if _, status := run(t, "compare"); status != subcommands.ExitUsageError {
		t.Errorf("compare without file: got status %v, want usage error", status)
	}
}

func TestInit(t *testing.T) {
	out, status := run(t, "init", "-life", "15")
	if status != subcommands.ExitSuccess {
		t.Fatalf("init failed with status %v", status)
	}
	for _, want := range []string{"initial_cost: 1000", "life_years: 15", "discount_rate_pct: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("init output does not contain %q:\n%s", want, out)
		}
	}

	file := filepath.Join(t.TempDir(), "project.yaml")
	if _, status := run(t, "init", "-cost", "5000", file); status != subcommands.ExitSuccess {
		t.Fatalf("init %s failed with status %v", file, status)
	}
	if _, status := run(t, "init", file); status != subcommands.ExitFailure {
		t.Errorf("init on an existing file: got status %v, want failure", status)
	}
	if _, status := run(t, "init", "-force", "-cost", "6000", file); status != subcommands.ExitSuccess {
		t.Errorf("init -force: got status %v, want success", status)
	}
	out, _ = run(t, "analyze", "-f", file, "-q", "$.inputs.initial_cost")
	if got := strings.TrimSpace(out); got != "6000" {
		t.Errorf("initial cost of the written project = %q, want 6000", got)
	}
}

const cpiCSV = `"Libellé";"Indice des prix à la consommation";"Codes"
"idBank";"001759970";""
"Dernière mise à jour";"28/08/2025 08:45";""
"Période";"";""
"2025-07";"121.9";"A"
"2024-07";"119.5";"A"
`

// fakeInsee serves cpiCSV in place of INSEE.
func fakeInsee(t *testing.T) {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create("valeurs_mensuelles.csv")
	if err != nil {
		t.Fatal(err)
	}
	f.Write([]byte(cpiCSV))
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	archive := buf.Bytes()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(archive)
	}))
	t.Cleanup(srv.Close)

	old := newInseeClient
	newInseeClient = func() *insee.Client { return &insee.Client{HTTP: srv.Client(), BaseURL: srv.URL + "/"} }
	t.Cleanup(func() { newInseeClient = old })
}

func TestInflation(t *testing.T) {
	fakeInsee(t)

	out, status := run(t, "inflation", "-years", "1")
	if status != subcommands.ExitSuccess {
		t.Fatalf("inflation failed with status %v", status)
	}
	if got := strings.TrimSpace(out); got != "2.01" {
		t.Errorf("inflation = %q, want 2.01", got)
	}
	if _, status := run(t, "inflation", "-years", "5"); status != subcommands.ExitFailure {
		t.Errorf("inflation over a too long period: got status %v, want failure", status)
	}
	if _, status := run(t, "inflation", "-years", "0"); status != subcommands.ExitUsageError {
		t.Errorf("inflation -years 0: got status %v, want usage error", status)
	}
}

func TestAnalyze_CPIYears(t *testing.T) {
	fakeInsee(t)

	out, status := run(t, "analyze", "-cpi-years", "1", "-q", "$.inputs.general_inflation_pct")
	if status != subcommands.ExitSuccess {
		t.Fatalf("analyze -cpi-years failed with status %v", status)
	}
	got, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		t.Fatal(err)
	}
	if want := (121.9/119.5 - 1) * 100; math.Abs(got-want) > 1e-9 {
		t.Errorf("inflation = %v, want %v", got, want)
	}

	if _, status := run(t, "analyze", "-cpi-years", "1", "-inflation", "2"); status != subcommands.ExitUsageError {
		t.Errorf("-cpi-years with -inflation: got status %v, want usage error", status)
	}
}

func TestTopic(t *testing.T) {
	out, status := run(t, "topic", "-raw", "metrics")
	if status != subcommands.ExitSuccess {
		t.Fatalf("topic failed with status %v", status)
	}
	if !strings.Contains(out, "Rate of Return") {
		t.Errorf("topic metrics:\n%s", out)
	}
	if _, status := run(t, "topic", "nope"); status != subcommands.ExitFailure {
		t.Errorf("unknown topic: got status %v, want failure", status)
	}
}

func TestConfigure(t *testing.T) {
	newFlags := func() (*flag.FlagSet, *string) {
		fs := flag.NewFlagSet("econ", flag.ContinueOnError)
		fs.Bool("v", false, "")
		return fs, fs.String("currency", "USD", "")
	}

	t.Setenv(EnvCurrency, "EUR")
	fs, cur := newFlags()
	fs.Parse(nil)
	if err := Configure(fs); err != nil {
		t.Fatal(err)
	}
	if *cur != "EUR" {
		t.Errorf("currency = %s, want EUR from the environment", *cur)
	}

	fs, cur = newFlags()
	fs.Parse([]string{"-currency", "CHF"})
	if err := Configure(fs); err != nil {
		t.Fatal(err)
	}
	if *cur != "CHF" {
		t.Errorf("currency = %s, want CHF from the command line", *cur)
	}

	t.Setenv(EnvVerbose, "maybe")
	fs, _ = newFlags()
	fs.Parse(nil)
	if err := Configure(fs); err == nil {
		t.Errorf("Configure() with %s=maybe should fail", EnvVerbose)
	}
}

func TestCompletion(t *testing.T) {
	fs := flag.NewFlagSet("econ", flag.ContinueOnError)
	fs.Bool("v", false, "")
	c := subcommands.NewCommander(fs, "econ")
	c.Register(c.HelpCommand(), "")
	Register(c)

	root := Completion(c, fs)
	if _, ok := root.Flags["v"]; !ok {
		t.Error("global flag v is not completed")
	}
	analyze, ok := root.Sub["analyze"]
	if !ok {
		t.Fatal("analyze is not completed")
	}
	for _, name := range []string{"cost", "life", "savings", "escalation", "inflation", "discount", "format", "q", "f"} {
		if _, ok := analyze.Flags[name]; !ok {
			t.Errorf("analyze flag %s is not completed", name)
		}
	}
	topics := root.Sub["topic"].Args.Predict("")
	if !strings.Contains(strings.Join(topics, " "), "metrics") {
		t.Errorf("topic completion = %v, want metrics", topics)
	}
	help := root.Sub["help"].Args.Predict("")
	if !strings.Contains(strings.Join(help, " "), "analyze") {
		t.Errorf("help completion = %v, want analyze", help)
	}
}
