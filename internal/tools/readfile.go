package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// ReadFile reads a file confined to a base directory. An empty base
// disables the confinement (absolute paths allowed).
type ReadFile struct {
	basePath string
}

func NewReadFile(basePath string) *ReadFile {
	return &ReadFile{basePath: basePath}
}

func (f *ReadFile) Name() string {
	return "read_file"
}

func (f *ReadFile) Description() string {
	return "Reads the content of a file at the specified path"
}

func (f *ReadFile) Execute(ctx context.Context, args map[string]any) (*Result, error) {
	pathArg, ok := args["path"].(string)
	if !ok {
		return errResult("missing or invalid 'path' argument"), nil
	}

	fullPath := pathArg
	if f.basePath != "" {
		fullPath = filepath.Clean(filepath.Join(f.basePath, pathArg))

		absBase, err := filepath.Abs(f.basePath)
		if err != nil {
			return errResult("failed to resolve base path: %v", err), nil
		}
		absPath, err := filepath.Abs(fullPath)
		if err != nil {
			return errResult("failed to resolve file path: %v", err), nil
		}
		rel, err := filepath.Rel(absBase, absPath)
		if err != nil || strings.HasPrefix(rel, "..") {
			return errResult("path escapes base directory"), nil
		}
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return errResult("file not found: %s", pathArg), nil
		}
		if os.IsPermission(err) {
			return errResult("permission denied: %s", pathArg), nil
		}
		return errResult("failed to read file: %v", err), nil
	}

	return okResult(string(content)), nil
}
