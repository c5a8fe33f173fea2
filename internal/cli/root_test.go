package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vijay-prabhu/okapi/internal/okapi"
)

// run executes the root command with fresh flag state
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	configPath, outputFmt, verbose = "", "", false
	if args == nil {
		args = []string{}
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err = rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestScore_ReferenceOutput(t *testing.T) {
	path := writeFile(t, "in.csv", "a,b,c,d,e,f\nx,y,10,2,0,50\n")

	stdout, _, err := run(t, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "4.093023255813954, x, y\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestScore_Sorted(t *testing.T) {
	path := writeFile(t, "in.csv", "h\nlow,1,1,1,0,100\nhigh,2,9,3,0,50\nmid,3,4,1,0,10\n")

	stdout, _, err := run(t, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), stdout)
	}
	for i, prefix := range []string{"high", "mid", "low"} {
		if !strings.Contains(lines[i], ", "+prefix+", ") {
			t.Errorf("line %d = %q, want id %s", i, lines[i], prefix)
		}
	}
}

func TestScore_HeaderOnly(t *testing.T) {
	path := writeFile(t, "in.csv", "a,b,c,d,e,f\n")

	stdout, _, err := run(t, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("expected empty output, got %q", stdout)
	}
}

func TestScore_Failures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "parse error", content: "h\nx,y,1,1,0,10\nx,y,bad,1,0,10\n", wantErr: okapi.ErrParse},
		{name: "zero denominator", content: "h\nx,y,1,1,0,10\nx,y,0.6,1,0,-100\n", wantErr: okapi.ErrArithmetic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := run(t, writeFile(t, "in.csv", tt.content))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if stdout != "" {
				t.Errorf("expected no output on failure, got %q", stdout)
			}
		})
	}
}

func TestScore_MissingFile(t *testing.T) {
	stdout, _, err := run(t, filepath.Join(t.TempDir(), "nope.csv"))
	if !errors.Is(err, okapi.ErrFileAccess) {
		t.Fatalf("expected ErrFileAccess, got %v", err)
	}
	if stdout != "" {
		t.Errorf("expected no output, got %q", stdout)
	}
}

func TestScore_Args(t *testing.T) {
	if _, _, err := run(t); err == nil {
		t.Error("expected error with no arguments")
	}
	if _, _, err := run(t, "a.csv", "b.csv"); err == nil {
		t.Error("expected error with two arguments")
	}
}

func TestScore_OutputFormats(t *testing.T) {
	path := writeFile(t, "in.csv", "a,b,c,d,e,f\nx,y,10,2,0,50\n")

	stdout, _, err := run(t, path, "-o", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, `"id_a": "x"`) {
		t.Errorf("json output = %q", stdout)
	}

	stdout, _, err = run(t, path, "--output", "table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "4.093023255813954") {
		t.Errorf("table output = %q", stdout)
	}

	if _, _, err := run(t, path, "-o", "xml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestScore_ConfigFile(t *testing.T) {
	input := writeFile(t, "in.csv", "a,b,c,d,e,f\nx,y,10,2,0,50\n")
	cfg := writeFile(t, "okapi.toml", "[output]\nformat = \"json\"\n")

	stdout, _, err := run(t, input, "-c", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(stdout), "[") {
		t.Errorf("expected JSON output from config, got %q", stdout)
	}

	// Flag wins over config
	stdout, _, err = run(t, input, "-c", cfg, "-o", "text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "4.093023255813954, x, y\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestScore_VerboseLogsToStderr(t *testing.T) {
	path := writeFile(t, "in.csv", "a,b,c,d,e,f\nx,y,10,2,0,50\n")

	stdout, stderr, err := run(t, path, "-v")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stdout != "4.093023255813954, x, y\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "writing ranked records") {
		t.Errorf("expected debug log on stderr, got %q", stderr)
	}
}

func TestVersion(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "today")
	defer SetVersionInfo("dev", "unknown", "unknown")

	stdout, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout, "okapi 1.2.3") || !strings.Contains(stdout, "abc123") {
		t.Errorf("version output = %q", stdout)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "okapi.toml")

	stdout, _, err := run(t, "config", "init", path)
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if !strings.Contains(stdout, "Created config file") {
		t.Errorf("config init output = %q", stdout)
	}

	stdout, _, err = run(t, "config", "init", path)
	if err != nil {
		t.Fatalf("second config init failed: %v", err)
	}
	if !strings.Contains(stdout, "already exists") {
		t.Errorf("second config init output = %q", stdout)
	}

	stdout, _, err = run(t, "config", "show", "-c", path)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(stdout, "[output]") || !strings.Contains(stdout, "text") {
		t.Errorf("config show output = %q", stdout)
	}
}
