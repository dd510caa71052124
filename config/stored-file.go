package config

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"sync"
)

// StoredFile is a simple struct able to split file paths into the components to improve readability of code.
// Files are written with owner-only permissions since connections may contain credentials.
type StoredFile struct {
	Dirname     string
	FileName    string
	FilePrefix  string
	FileExt     string
	FullPath    string
	mu          sync.Mutex
	fileCreated bool
}

func NewStoredFileInConfigHomeDir(filename string) *StoredFile {
	dirName := mustGetConfigHomeDir()
	f := &StoredFile{Dirname: dirName, FileName: filename}
	f.FullPath = path.Join(dirName, filename)
	f.FileExt = strings.TrimLeft(path.Ext(filename), ".")
	f.FilePrefix = strings.TrimRight(f.FileName, "."+f.FileExt)
	return f
}

func (f *StoredFile) Set(text []byte) (err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	// Create the config dir if required.
	if !fileExists(f.FullPath) { // if the file does not exist...
		if err := makeDir(f.Dirname); err != nil { // if we could not create the config directory...
			return err
		}
	}
	err = ioutil.WriteFile(f.FullPath, text, 0600)
	if err != nil {
		return err
	}
	f.fileCreated = true
	return nil
}

func (f *StoredFile) Get() (text []byte, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !fileExists(f.FullPath) { // if there is no file to read...
		return nil, FileNotFoundError{name: f.FullPath}
	}
	return ioutil.ReadFile(f.FullPath)
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil { // covers missing files and unreadable paths alike.
		return false
	}
	return !info.IsDir()
}
