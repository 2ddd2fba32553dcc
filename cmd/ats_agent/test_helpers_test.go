package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const acmePosting = `Senior Backend Engineer at Acme
Location: Berlin, Germany
Full-time, hybrid

Requirements:
- Golang
- Kubernetes
- PostgreSQL`

const testCV = `{
  "personal_info": {"full_name": "Ada Lovelace", "email": "ada@example.com", "phone": "+49 30 1234"},
  "summary": "Backend engineer building Go services on PostgreSQL for payments.",
  "experience": [{"title": "Backend Engineer", "company": "Initech", "description": "Go APIs", "achievements": ["Cut latency"]}],
  "education": [{"institution": "TU Berlin", "degree": "BSc", "field": "Computer Science"}],
  "skills": ["Go", "PostgreSQL"]
}`

// resetFlags restores every flag to its default so commands can run repeatedly in one process
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the CLI in-process and returns what it wrote to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
