package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/econ/renderer"
)

// Output formats.
const (
	formatTerm = "term"
	formatMD   = "md"
	formatHTML = "html"
	formatJSON = "json"
	formatCSV  = "csv"
)

// checkFormat returns an error if format is not one of the supported ones.
func checkFormat(format string, supported ...string) error {
	if !slices.Contains(supported, format) {
		return fmt.Errorf("unsupported format %q, must be one of %s", format, strings.Join(supported, ", "))
	}
	return nil
}

// printDocument prints a markdown document in one of the markdown based
// formats.
func printDocument(format, md string) error {
	switch format {
	case formatMD:
		fmt.Fprint(stdout, md)
	case formatHTML:
		html, err := renderer.HTML(md)
		if err != nil {
			return err
		}
		fmt.Fprint(stdout, html)
	default:
		printMarkdown(md)
	}
	return nil
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, string(data))
	return err
}
