package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	m "github.com/LukeInkster/JavaInheritanceAnalysis/internal/model"
)

func TestLocalSourceFSAdapter_ListProjectDirs(t *testing.T) {
	t.Run("returns sorted direct subdirectories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "zeta"))
		mustMkdir(t, filepath.Join(root, "alpha"))
		mustMkdir(t, filepath.Join(root, "alpha", "nested"))
		writeTestFile(t, filepath.Join(root, "notes.txt"), "not a project")

		dirs, err := adapter.ListProjectDirs(context.Background(), m.Path(root))
		if err != nil {
			t.Fatalf("ListProjectDirs() error = %v", err)
		}

		want := []m.Path{m.Path(filepath.Join(root, "alpha")), m.Path(filepath.Join(root, "zeta"))}
		if len(dirs) != len(want) {
			t.Fatalf("ListProjectDirs() = %v, want %v", dirs, want)
		}

		for i := range want {
			if dirs[i] != want[i] {
				t.Fatalf("ListProjectDirs()[%d] = %s, want %s", i, dirs[i], want[i])
			}
		}
	})

	t.Run("missing root is an error", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.ListProjectDirs(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
		if err == nil {
			t.Fatalf("ListProjectDirs() expected error for missing root")
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		if _, err := adapter.ListProjectDirs(ctx, m.Path(t.TempDir())); err == nil {
			t.Fatalf("ListProjectDirs() expected context error")
		}
	})
}

func TestLocalSourceFSAdapter_ListSources(t *testing.T) {
	t.Run("recursive and filtered by extension", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "src"))
		mustMkdir(t, filepath.Join(root, "src", "pkg"))
		writeTestFile(t, filepath.Join(root, "src", "pkg", "B.java"), "class B {}")
		writeTestFile(t, filepath.Join(root, "A.java"), "class A {}")
		writeTestFile(t, filepath.Join(root, "README.md"), "docs")

		files, err := adapter.ListSources(context.Background(), m.Path(root), ".java", nil)
		if err != nil {
			t.Fatalf("ListSources() error = %v", err)
		}

		want := []m.Path{
			m.Path(filepath.Join(root, "A.java")),
			m.Path(filepath.Join(root, "src", "pkg", "B.java")),
		}

		if len(files) != len(want) {
			t.Fatalf("ListSources() = %v, want %v", files, want)
		}

		for i := range want {
			if files[i] != want[i] {
				t.Fatalf("ListSources()[%d] = %s, want %s", i, files[i], want[i])
			}
		}
	})

	t.Run("exclude globs skip files and directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "test"))
		mustMkdir(t, filepath.Join(root, "main"))
		writeTestFile(t, filepath.Join(root, "test", "ATest.java"), "class ATest {}")
		writeTestFile(t, filepath.Join(root, "main", "A.java"), "class A {}")
		writeTestFile(t, filepath.Join(root, "main", "Generated.java"), "class Generated {}")

		files, err := adapter.ListSources(context.Background(), m.Path(root), ".java", []string{"test", "**/Generated.java"})
		if err != nil {
			t.Fatalf("ListSources() error = %v", err)
		}

		if len(files) != 1 || files[0] != m.Path(filepath.Join(root, "main", "A.java")) {
			t.Fatalf("ListSources() = %v, want only main/A.java", files)
		}
	})

	t.Run("invalid exclude pattern", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		if _, err := adapter.ListSources(context.Background(), m.Path(t.TempDir()), ".java", []string{"[unclosed"}); err == nil {
			t.Fatalf("ListSources() expected error for invalid pattern")
		}
	})

	t.Run("empty project", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		files, err := adapter.ListSources(context.Background(), m.Path(t.TempDir()), ".java", nil)
		if err != nil {
			t.Fatalf("ListSources() error = %v", err)
		}

		if len(files) != 0 {
			t.Fatalf("ListSources() = %v, want none", files)
		}
	})
}

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	path := filepath.Join(root, "A.java")
	content := "class A {\n}\n"
	writeTestFile(t, path, content)

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != content {
		t.Fatalf("ReadFile() = %q, want %q", string(got), content)
	}
}

func TestLocalSourceFSAdapter_FileInfo(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "A.java")
	writeTestFile(t, file, "class A {}")

	info, err := adapter.FileInfo(m.Path(file))
	if err != nil {
		t.Fatalf("FileInfo() error = %v", err)
	}

	if info.IsDir() {
		t.Fatalf("FileInfo() reported file as directory")
	}

	if _, err := adapter.FileInfo(m.Path(filepath.Join(root, "missing.java"))); !os.IsNotExist(err) {
		t.Fatalf("FileInfo() error = %v, want not exist", err)
	}
}

func TestLocalSourceFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	target := filepath.Join(t.TempDir(), "output", "nested", "failures.txt")

	if err := adapter.WriteFile(m.Path(target), []byte("report"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("reading written file: %v", err)
	}

	if string(got) != "report" {
		t.Fatalf("WriteFile() wrote %q", string(got))
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	writeTestBytes(t, path, []byte(contents))
}

func writeTestBytes(t *testing.T, path string, contents []byte) {
	t.Helper()
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
