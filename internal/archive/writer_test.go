package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readArchive(t *testing.T, path string) map[string]string {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	xzr, err := xz.NewReader(file)
	if err != nil {
		t.Fatal(err)
	}

	entries := make(map[string]string)
	tr := tar.NewReader(xzr)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if header.Typeflag == tar.TypeDir {
			entries[header.Name] = ""
			continue
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			t.Fatal(err)
		}
		entries[header.Name] = string(data)
	}
	return entries
}

func TestCreateTarXz(t *testing.T) {
	srcDir := writeTree(t, map[string]string{
		"1.json":        `{"ok": true}`,
		"manifest.json": `{"title": "Genesis"}`,
	})
	dstPath := filepath.Join(t.TempDir(), "genesis.tar.xz")

	if err := CreateTarXz(srcDir, dstPath, "Genesis"); err != nil {
		t.Fatal(err)
	}

	entries := readArchive(t, dstPath)
	if got := entries["Genesis/1.json"]; got != `{"ok": true}` {
		t.Errorf("Genesis/1.json = %q", got)
	}
	if got := entries["Genesis/manifest.json"]; got != `{"title": "Genesis"}` {
		t.Errorf("Genesis/manifest.json = %q", got)
	}
}

func TestCreateTarXzNestedDirectories(t *testing.T) {
	srcDir := writeTree(t, map[string]string{
		filepath.Join("sub", "2.json"): "{}",
	})
	dstPath := filepath.Join(t.TempDir(), "out", "book.tar.xz")

	// The destination's parent does not exist yet.
	if err := CreateTarXz(srcDir, dstPath, "Book"); err != nil {
		t.Fatal(err)
	}

	entries := readArchive(t, dstPath)
	if _, ok := entries["Book/sub/"]; !ok {
		t.Error("missing directory entry Book/sub/")
	}
	if got := entries["Book/sub/2.json"]; got != "{}" {
		t.Errorf("Book/sub/2.json = %q", got)
	}
}

func TestCreateBookTarXz(t *testing.T) {
	root := t.TempDir()
	bookDir := filepath.Join(root, "Exodus")
	if err := os.MkdirAll(bookDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bookDir, "1.json"), []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}
	dstPath := filepath.Join(t.TempDir(), "Exodus.tar.xz")

	if err := CreateBookTarXz(bookDir, dstPath); err != nil {
		t.Fatal(err)
	}

	entries := readArchive(t, dstPath)
	if _, ok := entries["Exodus/1.json"]; !ok {
		t.Error("archive base directory should come from the source directory name")
	}
}
