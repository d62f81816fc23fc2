package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildEcon compiles the econ binary and an econ-hello extension printing its
// environment into dir.
func buildEcon(t *testing.T, dir string) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping build test in short mode.")
	}

	helloSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("args=%%v\n", os.Args[1:])
}
`, EnvCurrency, EnvCurrency, EnvVerbose, EnvVerbose)

	helloPath := filepath.Join(dir, ExtensionPrefix+"hello")
	srcFile := helloPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloSource), 0o644); err != nil {
		t.Fatalf("Failed to write extension source: %v", err)
	}
	build := exec.Command("go", "build", "-o", helloPath, srcFile)
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile extension: %v", err)
	}

	econPath := filepath.Join(dir, "econ")
	build = exec.Command("go", "build", "-o", econPath, "../econ")
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		t.Fatalf("Failed to compile econ binary: %v", err)
	}
	return econPath
}

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()
	econPath := buildEcon(t, tempDir)

	testCases := []struct {
		name string
		args []string
		env  []string
		want []string
	}{
		{
			name: "flags",
			args: []string{"-currency", "XYZ", "-v", "hello", "world"},
			want: []string{EnvCurrency + "=XYZ", EnvVerbose + "=true", "args=[world]"},
		},
		{
			name: "environment",
			args: []string{"hello"},
			env:  []string{EnvCurrency + "=EUR"},
			want: []string{EnvCurrency + "=EUR", EnvVerbose + "=false", "args=[]"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := exec.Command(econPath, tc.args...)
			c.Dir = t.TempDir() // no .env
			c.Env = append([]string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}, tc.env...)

			var stdout, stderr bytes.Buffer
			c.Stdout = &stdout
			c.Stderr = &stderr
			if err := c.Run(); err != nil {
				t.Fatalf("econ command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
			}
			for _, line := range tc.want {
				if !strings.Contains(stdout.String(), line) {
					t.Errorf("Expected output to contain %q, but got:\n%s", line, stdout.String())
				}
			}
		})
	}
}

func TestDotEnv(t *testing.T) {
	tempDir := t.TempDir()
	econPath := buildEcon(t, tempDir)

	work := t.TempDir()
	if err := os.WriteFile(filepath.Join(work, ".env"), []byte(EnvCurrency+"=GBP\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c := exec.Command(econPath, "hello")
	c.Dir = work
	c.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}
	out, err := c.CombinedOutput()
	if err != nil {
		t.Fatalf("econ command failed: %v\n%s", err, out)
	}
	if !strings.Contains(string(out), EnvCurrency+"=GBP") {
		t.Errorf("Expected the currency from .env, got:\n%s", out)
	}
}

func TestUnknownCommand(t *testing.T) {
	tempDir := t.TempDir()
	econPath := buildEcon(t, tempDir)

	c := exec.Command(econPath, "frobnicate")
	c.Dir = t.TempDir()
	c.Env = []string{"PATH=" + tempDir}
	err := c.Run()
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 2 {
		t.Errorf("unknown command: got %v, want exit status 2", err)
	}
}
