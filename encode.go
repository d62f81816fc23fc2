package econ

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
)

// MarshalJSON encodes the analysis with its inputs first, then the metrics,
// then the yearly detail. Undefined metrics are encoded as null.
func (a *Analysis) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("inputs", a.Inputs)
	w.Append("multiplier", a.Multiplier)
	w.Append("nominal_discount_rate", a.NominalDiscountRate)
	w.Append("irr", a.IRR)
	w.Append("npv", a.NPV)
	w.Append("bc_ratio", a.BCRatio)
	w.Append("simple_payback", a.SimplePayback)
	w.Optional("never_recovers", a.NeverRecovers())
	w.Append("break_even", a.BreakEven)
	w.Append("years", a.Years())
	return w.MarshalJSON()
}

// DecodeInputs reads project inputs from r. The format is YAML, which also
// accepts JSON documents. Missing fields keep the values of DefaultInputs.
func DecodeInputs(r io.Reader) (ProjectInputs, error) {
	in := DefaultInputs()
	data, err := io.ReadAll(r)
	if err != nil {
		return in, fmt.Errorf("cannot read project inputs: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &in); err != nil {
		return in, fmt.Errorf("cannot decode project inputs: %w", err)
	}
	return in, nil
}

// DecodeInputsFile reads project inputs from a YAML or JSON file.
func DecodeInputsFile(name string) (ProjectInputs, error) {
	f, err := os.Open(name)
	if err != nil {
		return DefaultInputs(), err
	}
	defer f.Close()
	in, err := DecodeInputs(f)
	if err != nil {
		return in, fmt.Errorf("%s: %w", filepath.Base(name), err)
	}
	return in, nil
}

// EncodeInputs writes the inputs as a YAML document.
func EncodeInputs(w io.Writer, in ProjectInputs) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Scenario is a named set of project inputs.
type Scenario struct {
	Name string `json:"name"`
	ProjectInputs
}

// UnmarshalJSON decodes a scenario on top of DefaultInputs so that a line only
// needs the fields that differ.
func (s *Scenario) UnmarshalJSON(data []byte) error {
	type scenario Scenario // no methods, avoid recursion
	v := scenario{ProjectInputs: DefaultInputs()}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*s = Scenario(v)
	return nil
}

// DecodeScenarios reads scenarios in JSONL format, one JSON object per line.
// Blank lines and lines starting with '#' are skipped. Unnamed scenarios are
// named after their line number.
func DecodeScenarios(r io.Reader) ([]Scenario, error) {
	var scenarios []Scenario
	var errs error
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var s Scenario
		if err := json.Unmarshal([]byte(text), &s); err != nil {
			errs = errors.Join(errs, fmt.Errorf("line %d: %w", line, err))
			continue
		}
		if s.Name == "" {
			s.Name = fmt.Sprintf("#%d", line)
		}
		scenarios = append(scenarios, s)
	}
	if err := scanner.Err(); err != nil {
		errs = errors.Join(errs, err)
	}
	return scenarios, errs
}

// EncodeScenario appends a scenario to w as a single JSONL line.
func EncodeScenario(w io.Writer, s Scenario) error {
	var o jsonObjectWriter
	o.Append("name", s.Name)
	o.EmbedFrom(s.ProjectInputs)
	data, err := o.MarshalJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
