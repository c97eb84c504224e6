package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"textstats/config"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the command tree with a clean working directory and returns
// stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--dir", t.TempDir()}, args...))

	err := rootCmd.Execute()
	return stdout.String(), err
}

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFreqCommand_Text(t *testing.T) {
	out, err := run(t, "freq", "--text", "The cat sat on the mat. The cat ran.", "--top", "2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "the\t3\ncat\t2\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestFreqCommand_TableFooter(t *testing.T) {
	out, err := run(t, "freq", "--text", "The cat sat on the mat. The cat ran.", "--top", "2", "-o", "table")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "top 2 of 6 words") {
		t.Errorf("expected word summary in footer, got %q", out)
	}
	if !strings.Contains(out, "9") {
		t.Errorf("expected total count 9 in footer, got %q", out)
	}
}

func TestScanCommand_TableFooter(t *testing.T) {
	path := writeInput(t, numbered(25))

	out, err := run(t, "scan", path, "--size", "10", "--no-progress", "-o", "table")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "3 chunks") || !strings.Contains(out, "50") {
		t.Errorf("expected chunk and token totals in footer, got %q", out)
	}

	out, err = run(t, "scan", path, "--size", "10", "--no-progress", "-o", "tsv")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "chunks") {
		t.Errorf("tsv output should not carry a footer, got %q", out)
	}
}

func TestFreqCommand_FileNoStopwords(t *testing.T) {
	path := writeInput(t, "the dog and the dog\n")

	out, err := run(t, "freq", path, "--no-stopwords", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}

	var entries []struct {
		Token string `json:"token"`
		Count int    `json:"count"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(entries) != 1 || entries[0].Token != "dog" || entries[0].Count != 2 {
		t.Errorf("unexpected entries: %+v", entries)
	}
}

func TestFreqCommand_SourceErrors(t *testing.T) {
	if _, err := run(t, "freq"); err == nil {
		t.Error("expected error without file or --text")
	}
	if _, err := run(t, "freq", "some.txt", "--text", "x"); err == nil {
		t.Error("expected error with both file and --text")
	}
	if _, err := run(t, "freq", filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFreqCommand_Stdin(t *testing.T) {
	rootCmd.SetIn(strings.NewReader("b a b"))
	t.Cleanup(func() { rootCmd.SetIn(nil) })

	out, err := run(t, "freq", "-")
	if err != nil {
		t.Fatal(err)
	}
	if out != "b\t2\na\t1\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUniqueCommand(t *testing.T) {
	out, err := run(t, "unique", "--text", "b a B c a")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a\nb\nc\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestCooccurCommand(t *testing.T) {
	out, err := run(t, "cooccur", "--text", "a b a b")
	if err != nil {
		t.Fatal(err)
	}
	if out != "a\tb\t2\nb\ta\t1\n" {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "cooccur", "--text", "a b a b", "--window", "1")
	if err != nil {
		t.Fatal(err)
	}
	if out != "" {
		t.Errorf("expected no pairs for window 1, got %q", out)
	}

	if _, err := run(t, "cooccur", "--text", "a b", "--window", "0"); err == nil {
		t.Error("expected error for window 0")
	}
}

func TestLinesCommand(t *testing.T) {
	path := writeInput(t, "  one\ntwo  \nthree\n")

	out, err := run(t, "lines", path, "--limit", "2")
	if err != nil {
		t.Fatal(err)
	}
	if out != "one\ntwo\n" {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "lines", "--text", "solo  ", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}
	var lines []string
	if err := json.Unmarshal([]byte(out), &lines); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(lines) != 1 || lines[0] != "solo" {
		t.Errorf("unexpected lines: %q", lines)
	}
}

func numbered(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "word%d filler\n", i)
	}
	return b.String()
}

func TestChunksCommand(t *testing.T) {
	path := writeInput(t, numbered(2500))

	out, err := run(t, "chunks", path, "--size", "1000", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}

	var infos []chunkInfo
	if err := json.Unmarshal([]byte(out), &infos); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(infos) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(infos))
	}
	for i, want := range []int{1000, 1000, 500} {
		if infos[i].Lines != want || infos[i].Index != i {
			t.Errorf("chunk %d: expected %d lines, got %+v", i, want, infos[i])
		}
	}
}

func TestScanCommand(t *testing.T) {
	path := writeInput(t, numbered(25))

	out, err := run(t, "scan", path, "--size", "10", "--no-progress", "-o", "json")
	if err != nil {
		t.Fatal(err)
	}

	var stats []chunkStats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(stats) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(stats))
	}
	if stats[0].Tokens != 20 || stats[0].Distinct != 11 || stats[2].Lines != 5 {
		t.Errorf("unexpected chunk stats: %+v", stats)
	}
}

func TestCorpusCommand(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.txt"), []byte("red blue red"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.md"), []byte("blue red"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "c.bin"), []byte("green"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "corpus", root)
	if err != nil {
		t.Fatal(err)
	}
	if out != "red\t3\nblue\t2\n" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "textstats.yaml")

	out, err := run(t, "--dir", dir, "config", "init")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("expected written path %q, got %q", path, out)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Analysis.Window != config.DefaultConfig().Analysis.Window {
		t.Errorf("expected default window, got %d", loaded.Analysis.Window)
	}

	if _, err := run(t, "--dir", dir, "config", "init"); err == nil {
		t.Error("expected error when textstats.yaml already exists")
	}
	if _, err := run(t, "--dir", dir, "config", "init", "--force"); err != nil {
		t.Errorf("expected --force to overwrite: %v", err)
	}
}

func TestConfigInit_ExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".textstats", "config.yaml")

	if _, err := run(t, "--config", path, "config", "init"); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config at %s: %v", path, err)
	}
}

func TestRender(t *testing.T) {
	r := report{
		payload: map[string]int{"x": 1},
		headers: []string{"Word", "Count"},
		rows:    [][]string{{"x", "1"}},
		footer:  []string{"1 words", "1"},
		aligns:  []text.Align{text.AlignLeft, text.AlignRight},
	}

	var buf bytes.Buffer
	if err := render(&buf, "table", r); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Word") || !strings.Contains(buf.String(), "╭") {
		t.Errorf("expected rounded table with headers, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "1 words") {
		t.Errorf("expected footer in table output, got %q", buf.String())
	}

	buf.Reset()
	if err := render(&buf, "auto", r); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "x\t1\n" {
		t.Errorf("expected tsv without footer for non-terminal writer, got %q", buf.String())
	}

	if err := render(&buf, "yaml", r); err == nil {
		t.Error("expected error for unknown format")
	}
}
