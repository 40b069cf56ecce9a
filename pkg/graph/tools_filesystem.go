package graph

import (
	"context"

	"github.com/codeready-toolchain/alex/pkg/toolloop"
	"github.com/codeready-toolchain/alex/pkg/tools/filesystem"
)

// filesystemCatalog adapts a *filesystem.Toolset's six operations into a
// toolloop.Catalog for the self-modify responder: read_file, write_file,
// list_directory, search_code, git_status, git_commit.
func filesystemCatalog(fs *filesystem.Toolset) toolloop.Catalog {
	return toolloop.Catalog{
		{
			Name:        "read_file",
			Description: "Read a file's contents from the project sandbox.",
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"path": map[string]any{"type": "string"}},
				"required":   []string{"path"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				path, _ := args["path"].(string)
				return fs.ReadFile(ctx, path)
			},
		},
		{
			Name:        "write_file",
			Description: "Write content to a file in the project sandbox.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":                 map[string]any{"type": "string"},
					"content":              map[string]any{"type": "string"},
					"create_dirs":          map[string]any{"type": "boolean"},
					"require_confirmation": map[string]any{"type": "boolean"},
				},
				"required": []string{"path", "content"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				path, _ := args["path"].(string)
				content, _ := args["content"].(string)
				createDirs := boolArg(args, "create_dirs", true)
				requireConfirmation := boolArg(args, "require_confirmation", true)
				return fs.WriteFile(ctx, path, content, createDirs, requireConfirmation)
			},
		},
		{
			Name:        "list_directory",
			Description: "List files under a directory in the project sandbox.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"path":      map[string]any{"type": "string"},
					"recursive": map[string]any{"type": "boolean"},
				},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				path, _ := args["path"].(string)
				recursive := boolArg(args, "recursive", false)
				return fs.ListDirectory(ctx, path, recursive)
			},
		},
		{
			Name:        "search_code",
			Description: "Search files under the project sandbox for a regex pattern.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pattern":      map[string]any{"type": "string"},
					"path":         map[string]any{"type": "string"},
					"file_pattern": map[string]any{"type": "string"},
					"max_results":  map[string]any{"type": "integer"},
				},
				"required": []string{"pattern"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				pattern, _ := args["pattern"].(string)
				path, _ := args["path"].(string)
				filePattern, _ := args["file_pattern"].(string)
				maxResults := intArg(args, "max_results", 50)
				return fs.SearchCode(ctx, pattern, path, filePattern, maxResults)
			},
		},
		{
			Name:        "git_status",
			Description: "Show the project repository's working-tree status.",
			Parameters:  map[string]any{"type": "object", "properties": map[string]any{}},
			Handler: func(ctx context.Context, _ map[string]any) (any, error) {
				return fs.GitStatus(ctx)
			},
		},
		{
			Name:        "git_commit",
			Description: "Commit staged (or named) changes in the project repository.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"message": map[string]any{"type": "string"},
					"files":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
				},
				"required": []string{"message"},
			},
			Handler: func(ctx context.Context, args map[string]any) (any, error) {
				message, _ := args["message"].(string)
				files := stringSliceArg(args, "files")
				return fs.GitCommit(ctx, message, files)
			},
		},
	}
}

func boolArg(args map[string]any, key string, def bool) bool {
	if v, ok := args[key].(bool); ok {
		return v
	}
	return def
}

func intArg(args map[string]any, key string, def int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return def
	}
}

func stringSliceArg(args map[string]any, key string) []string {
	raw, ok := args[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// filesModifiedFrom scans the loop's call records for successful write_file
// calls and returns the distinct set of paths touched, in call order; the
// result becomes the CodeChange row's files_modified.
func filesModifiedFrom(calls []toolloop.CallRecord) []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range calls {
		if c.Name != "write_file" || c.Error != "" {
			continue
		}
		res, ok := c.Result.(*filesystem.WriteFileResult)
		if !ok || res == nil {
			continue
		}
		if seen[res.Path] {
			continue
		}
		seen[res.Path] = true
		out = append(out, res.Path)
	}
	return out
}
