package config

import (
	"errors"
	"io/ioutil"
	"path"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	f := path.Join(dir, "plain.txt")
	if err := ioutil.WriteFile(f, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	// Test 1 - regular file exists.
	if !fileExists(f) {
		t.Fatal("test 1 failed: expected regular file to exist")
	}
	// Test 2 - missing file does not exist.
	if fileExists(path.Join(dir, "missing.txt")) {
		t.Fatal("test 2 failed: expected missing file to not exist")
	}
	// Test 3 - a stat error that is not IsNotExist (path under a regular file) must not panic.
	if fileExists(path.Join(f, "child.txt")) {
		t.Fatal("test 3 failed: expected path under a regular file to not exist")
	}
	// Test 4 - a directory is not a file.
	if fileExists(dir) {
		t.Fatal("test 4 failed: expected directory to not count as a file")
	}
}

func TestStoredFileSetGet(t *testing.T) {
	dir := t.TempDir()
	f := &StoredFile{
		Dirname:  dir,
		FileName: "connections.yaml",
		FullPath: path.Join(dir, "connections.yaml"),
	}
	// Test 1 - Get before any Set returns FileNotFoundError.
	_, err := f.Get()
	if !errors.As(err, &FileNotFoundError{}) {
		t.Fatalf("test 1 failed: expected FileNotFoundError; got: %v", err)
	}
	// Test 2 - Set then Get round-trips the data.
	expected := []byte("key: value\n")
	if err := f.Set(expected); err != nil {
		t.Fatal("test 2 failed: ", err)
	}
	got, err := f.Get()
	if err != nil {
		t.Fatal("test 2 failed: ", err)
	}
	if string(got) != string(expected) {
		t.Fatalf("test 2 failed: expected %q; got %q", expected, got)
	}
}
