package fs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWalker_IncludeExclude(t *testing.T) {
	root := t.TempDir()
	files := map[string]string{
		"a.txt":                  "a",
		"notes/b.md":             "b",
		"notes/c.go":             "c",
		"node_modules/dep/d.txt": "d",
		".git/HEAD.txt":          "e",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	w := NewWalker(
		[]string{"**/*.txt", "**/*.md"},
		[]string{"**/node_modules/**", "**/.git/**"},
	)
	found, err := w.Walk(root)
	if err != nil {
		t.Fatal(err)
	}

	if len(found) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(found), found)
	}
	if filepath.Base(found[0].Path) != "a.txt" || filepath.Base(found[1].Path) != "b.md" {
		t.Errorf("unexpected files or order: %+v", found)
	}
	if found[0].Size != 1 {
		t.Errorf("expected size 1, got %d", found[0].Size)
	}
}

func TestWalker_DefaultIncludesEverything(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "x.bin"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := NewWalker(nil, nil).Walk(root)
	if err != nil {
		t.Fatal(err)
	}
	if len(found) != 1 {
		t.Errorf("expected 1 file, got %+v", found)
	}
}

func TestWalker_MissingRoot(t *testing.T) {
	_, err := NewWalker(nil, nil).Walk(filepath.Join(t.TempDir(), "missing"))
	if err == nil {
		t.Error("expected error for missing root")
	}
}

func TestReadFile(t *testing.T) {
	path := writeFile(t, "r.txt", "hello")
	content, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if content != "hello" {
		t.Errorf("expected 'hello', got %q", content)
	}
}
