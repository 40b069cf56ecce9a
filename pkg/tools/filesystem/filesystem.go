// Package filesystem is the sandboxed filesystem tool catalog used by the
// self-modify responder: read, write, list, and search files under a fixed
// project root, plus git status/commit.
//
// Four policies gate every operation: an allow-list of subtrees, a
// protected-file list requiring explicit confirmation to write, an
// extension allow-list for writes, and a path-traversal guard via
// resolve-then-relative-to. Git subprocess calls are context-bounded.
package filesystem

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/config"
	"github.com/codeready-toolchain/alex/pkg/redact"
)

// allowedPaths are the subtrees, relative to the project root, that reads
// and writes may touch.
var allowedPaths = []string{
	"pkg/",
	"cmd/",
	"ent/",
	"test/",
	"scripts/",
}

// protectedPaths require an explicit require_confirmation=false to write.
var protectedPaths = []string{
	"go.mod",
	"go.sum",
	".env",
	".env.example",
	"config/alex.yaml",
	"config/model-providers.yaml",
}

// allowedExtensions are the file types writes are permitted to touch.
var allowedExtensions = []string{
	".go", ".sql", ".yaml", ".yml", ".json", ".toml",
	".md", ".txt",
	".sh", ".bash",
}

// maxSearchLineLength truncates a matched line for the search_code result.
const maxSearchLineLength = 200

const gitTimeout = 10 * time.Second
const gitCommitTimeout = 30 * time.Second

// Toolset is the sandboxed filesystem tool catalog, rooted at root.
type Toolset struct {
	root       string
	allowed    []string
	protected  []string
	extensions []string
	redactor   *redact.Redactor
}

// New builds a Toolset rooted at the given absolute project directory,
// using the package's built-in allow-lists. File contents returned by
// read_file are scrubbed through the package's built-in secret patterns
// before reaching the model, since tool output is model-visible and may
// later be persisted verbatim as Interaction content.
func New(root string) *Toolset {
	return &Toolset{
		root:       root,
		allowed:    allowedPaths,
		protected:  protectedPaths,
		extensions: allowedExtensions,
		redactor:   redact.New(nil),
	}
}

// NewFromConfig builds a Toolset whose allow-lists come from
// config.FilesystemConfig, falling back to the package defaults for any
// list the config leaves empty.
func NewFromConfig(root string, cfg *config.FilesystemConfig) *Toolset {
	t := New(root)
	if cfg == nil {
		return t
	}
	if len(cfg.AllowedSubtrees) > 0 {
		t.allowed = cfg.AllowedSubtrees
	}
	if len(cfg.ProtectedPaths) > 0 {
		t.protected = cfg.ProtectedPaths
	}
	if len(cfg.AllowedExtensions) > 0 {
		t.extensions = cfg.AllowedExtensions
	}
	return t
}

func (t *Toolset) resolve(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Join(t.root, path))
	if err != nil {
		return "", &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("cannot resolve path: %s", path)}
	}
	rel, err := filepath.Rel(t.root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("path escapes project root: %s", path)}
	}
	return abs, nil
}

func relPath(rel string) string {
	return filepath.ToSlash(rel)
}

func (t *Toolset) isPathAllowed(path string) bool {
	abs, err := t.resolve(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(t.root, abs)
	if err != nil {
		return false
	}
	rel = relPath(rel)
	for _, allowed := range t.allowed {
		if strings.HasPrefix(rel, allowed) {
			return true
		}
	}
	return false
}

func (t *Toolset) isProtected(path string) bool {
	abs, err := t.resolve(path)
	if err != nil {
		return true
	}
	rel, err := filepath.Rel(t.root, abs)
	if err != nil {
		return true
	}
	rel = relPath(rel)
	for _, pf := range t.protected {
		if rel == pf || strings.HasSuffix(rel, "/"+pf) {
			return true
		}
	}
	return false
}

func (t *Toolset) hasAllowedExtension(path string) bool {
	for _, ext := range t.extensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// ReadFileResult is read_file's output.
type ReadFileResult struct {
	Success  bool   `json:"success"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	SizeByte int    `json:"size_bytes"`
	Lines    int    `json:"lines"`
}

// ReadFile returns a file's contents and size/line metadata.
func (t *Toolset) ReadFile(_ context.Context, path string) (*ReadFileResult, error) {
	if !t.isPathAllowed(path) {
		return nil, &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("path not in allowed directories: %s", path)}
	}
	abs, err := t.resolve(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, &apperrors.FileNotFoundError{Path: path}
	}
	if err != nil {
		return nil, &apperrors.IOFailureError{Op: "stat " + path, Cause: err}
	}
	if info.IsDir() {
		return nil, &apperrors.IOFailureError{Op: "read " + path, Cause: fmt.Errorf("not a file")}
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, &apperrors.IOFailureError{Op: "read " + path, Cause: err}
	}

	redacted := t.redactor.Redact(string(content))

	return &ReadFileResult{
		Success:  true,
		Path:     path,
		Content:  redacted,
		SizeByte: len(content),
		Lines:    countLines(content),
	}, nil
}

// WriteFileResult is write_file's output.
type WriteFileResult struct {
	Success         bool    `json:"success"`
	Path            string  `json:"path"`
	Action          string  `json:"action"`
	SizeByte        int     `json:"size_bytes"`
	Lines           int     `json:"lines"`
	PreviousContent *string `json:"previous_content,omitempty"`
}

// WriteFile writes content to path, creating parent directories if
// create_dirs is true, and refusing writes to protected paths unless the
// caller explicitly passes requireConfirmation=false.
func (t *Toolset) WriteFile(_ context.Context, path, content string, createDirs, requireConfirmation bool) (*WriteFileResult, error) {
	if !t.isPathAllowed(path) {
		return nil, &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("path not in allowed directories: %s", path)}
	}
	if !t.hasAllowedExtension(path) {
		return nil, &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("file extension not allowed: %s", path)}
	}
	if t.isProtected(path) && requireConfirmation {
		return nil, &apperrors.PermissionDeniedError{
			Reason: fmt.Sprintf("file is protected and requires explicit confirmation: %s", path),
		}
	}

	abs, err := t.resolve(path)
	if err != nil {
		return nil, err
	}

	var previous *string
	action := "created"
	if existing, err := os.ReadFile(abs); err == nil {
		s := string(existing)
		previous = &s
		action = "modified"
	}

	if createDirs {
		if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
			return nil, &apperrors.IOFailureError{Op: "mkdir for " + path, Cause: err}
		}
	}

	if err := os.WriteFile(abs, []byte(content), 0o644); err != nil {
		return nil, &apperrors.IOFailureError{Op: "write " + path, Cause: err}
	}

	return &WriteFileResult{
		Success:         true,
		Path:            path,
		Action:          action,
		SizeByte:        len(content),
		Lines:           countLines([]byte(content)),
		PreviousContent: previous,
	}, nil
}

// DirEntry is one item in a list_directory result.
type DirEntry struct {
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size,omitempty"`
}

// ListDirectoryResult is list_directory's output.
type ListDirectoryResult struct {
	Success bool       `json:"success"`
	Path    string     `json:"path"`
	Items   []DirEntry `json:"items"`
	Count   int        `json:"count"`
}

// ListDirectory lists files (and, non-recursively, directories) under path.
func (t *Toolset) ListDirectory(_ context.Context, path string, recursive bool) (*ListDirectoryResult, error) {
	if path != "" && !t.isPathAllowed(path) {
		return nil, &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("path not in allowed directories: %s", path)}
	}

	abs := t.root
	if path != "" {
		var err error
		abs, err = t.resolve(path)
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil, &apperrors.FileNotFoundError{Path: path}
	}
	if err != nil {
		return nil, &apperrors.IOFailureError{Op: "stat " + path, Cause: err}
	}
	if !info.IsDir() {
		return nil, &apperrors.IOFailureError{Op: "list " + path, Cause: fmt.Errorf("not a directory")}
	}

	var items []DirEntry
	if recursive {
		err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, rerr := filepath.Rel(t.root, p)
			if rerr != nil {
				return nil
			}
			rel = relPath(rel)
			if !t.isPathAllowed(rel) {
				return nil
			}
			fi, ferr := d.Info()
			var size int64
			if ferr == nil {
				size = fi.Size()
			}
			items = append(items, DirEntry{Path: rel, Type: "file", Size: size})
			return nil
		})
		if err != nil {
			return nil, &apperrors.IOFailureError{Op: "list " + path, Cause: err}
		}
	} else {
		entries, err := os.ReadDir(abs)
		if err != nil {
			return nil, &apperrors.IOFailureError{Op: "list " + path, Cause: err}
		}
		for _, e := range entries {
			rel, rerr := filepath.Rel(t.root, filepath.Join(abs, e.Name()))
			if rerr != nil {
				continue
			}
			rel = relPath(rel)
			if e.IsDir() {
				if anyHasPrefix(rel, t.allowed) {
					items = append(items, DirEntry{Path: rel, Type: "directory"})
				}
				continue
			}
			if t.isPathAllowed(rel) {
				fi, ferr := e.Info()
				var size int64
				if ferr == nil {
					size = fi.Size()
				}
				items = append(items, DirEntry{Path: rel, Type: "file", Size: size})
			}
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if (items[i].Type == "file") != (items[j].Type == "file") {
			return items[j].Type == "file"
		}
		return items[i].Path < items[j].Path
	})

	display := path
	if display == "" {
		display = "."
	}
	return &ListDirectoryResult{Success: true, Path: display, Items: items, Count: len(items)}, nil
}

func anyHasPrefix(rel string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(rel, strings.TrimSuffix(p, "/")) {
			return true
		}
	}
	return false
}

// SearchMatch is one search_code hit.
type SearchMatch struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Content string `json:"content"`
}

// SearchCodeResult is search_code's output.
type SearchCodeResult struct {
	Success       bool          `json:"success"`
	Pattern       string        `json:"pattern"`
	Results       []SearchMatch `json:"results"`
	Count         int           `json:"count"`
	FilesSearched int           `json:"files_searched"`
	Truncated     bool          `json:"truncated"`
}

// SearchCode grep-like searches files matching filePattern under path for
// a regex, capped at maxResults. file_pattern defaults to "*.go".
func (t *Toolset) SearchCode(_ context.Context, pattern, path, filePattern string, maxResults int) (*SearchCodeResult, error) {
	if filePattern == "" {
		filePattern = "*.go"
	}
	if maxResults <= 0 {
		maxResults = 50
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, &apperrors.InvalidPatternError{Pattern: pattern, Cause: err}
	}

	searchRoot := t.root
	if path != "" {
		abs, err := t.resolve(path)
		if err != nil {
			return nil, err
		}
		searchRoot = abs
	}

	var results []SearchMatch
	filesSearched := 0
	truncated := false

	err = filepath.WalkDir(searchRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		matched, _ := filepath.Match(filePattern, d.Name())
		if !matched {
			return nil
		}
		rel, rerr := filepath.Rel(t.root, p)
		if rerr != nil {
			return nil
		}
		rel = relPath(rel)
		if !t.isPathAllowed(rel) {
			return nil
		}

		filesSearched++
		file, ferr := os.Open(p)
		if ferr != nil {
			return nil
		}
		defer file.Close()

		scanner := bufio.NewScanner(file)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			line := scanner.Text()
			if re.MatchString(line) {
				trimmed := strings.TrimSpace(line)
				if len(trimmed) > maxSearchLineLength {
					trimmed = trimmed[:maxSearchLineLength]
				}
				results = append(results, SearchMatch{File: rel, Line: lineNo, Content: trimmed})
				if len(results) >= maxResults {
					truncated = true
					return fs.SkipAll
				}
			}
		}
		return nil
	})
	if err != nil && err != fs.SkipAll {
		return nil, &apperrors.IOFailureError{Op: "search", Cause: err}
	}

	if results == nil {
		results = []SearchMatch{}
	}
	return &SearchCodeResult{
		Success:       true,
		Pattern:       pattern,
		Results:       results,
		Count:         len(results),
		FilesSearched: filesSearched,
		Truncated:     truncated,
	}, nil
}

// GitChange is one line of `git status --porcelain`.
type GitChange struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// GitStatusResult is git_status's output.
type GitStatusResult struct {
	Success    bool        `json:"success"`
	Changes    []GitChange `json:"changes"`
	HasChanges bool        `json:"has_changes"`
}

// GitStatus runs `git status --porcelain` under the project root.
func (t *Toolset) GitStatus(ctx context.Context) (*GitStatusResult, error) {
	ctx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()

	out, err := t.runGit(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}

	var changes []GitChange
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if line == "" {
			continue
		}
		status := strings.TrimSpace(line[:min(2, len(line))])
		file := ""
		if len(line) > 3 {
			file = line[3:]
		}
		changes = append(changes, GitChange{Status: status, File: file})
	}

	return &GitStatusResult{Success: true, Changes: changes, HasChanges: len(changes) > 0}, nil
}

// GitCommitResult is git_commit's output.
type GitCommitResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SHA     string `json:"sha,omitempty"`
}

// GitCommit stages files (or all changes if files is empty) and commits
// with message, appending the assistant's co-author trailer.
func (t *Toolset) GitCommit(ctx context.Context, message string, files []string) (*GitCommitResult, error) {
	for _, f := range files {
		if !t.isPathAllowed(f) {
			return nil, &apperrors.PermissionDeniedError{Reason: fmt.Sprintf("cannot commit file outside allowed paths: %s", f)}
		}
	}

	addCtx, cancel := context.WithTimeout(ctx, gitTimeout)
	defer cancel()
	if len(files) > 0 {
		if _, err := t.runGit(addCtx, append([]string{"add"}, files...)...); err != nil {
			return nil, err
		}
	} else {
		if _, err := t.runGit(addCtx, "add", "-A"); err != nil {
			return nil, err
		}
	}

	commitCtx, commitCancel := context.WithTimeout(ctx, gitCommitTimeout)
	defer commitCancel()
	full := message + "\n\nCo-Authored-By: Alex AI <alex@ai-assistant.local>"
	out, err := t.runGit(commitCtx, "commit", "-m", full)
	if err != nil {
		if strings.Contains(strings.ToLower(out), "nothing to commit") {
			return &GitCommitResult{Success: true, Message: "Nothing to commit"}, nil
		}
		return nil, err
	}

	shaCtx, shaCancel := context.WithTimeout(ctx, gitTimeout)
	defer shaCancel()
	sha, err := t.runGit(shaCtx, "rev-parse", "HEAD")
	if err != nil {
		return nil, err
	}

	return &GitCommitResult{Success: true, Message: message, SHA: strings.TrimSpace(sha)}, nil
}

func (t *Toolset) runGit(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = t.root
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() == context.DeadlineExceeded {
		return stdout.String(), &apperrors.TimeoutError{Op: "git " + strings.Join(args, " ")}
	}
	if err != nil {
		return stdout.String(), &apperrors.IOFailureError{Op: "git " + strings.Join(args, " "), Cause: fmt.Errorf("%w: %s", err, stderr.String())}
	}
	return stdout.String(), nil
}

func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}
	return bytes.Count(content, []byte("\n")) + 1
}
