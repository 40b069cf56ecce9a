package filesystem_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/codeready-toolchain/alex/pkg/apperrors"
	"github.com/codeready-toolchain/alex/pkg/tools/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSandbox(t *testing.T) *filesystem.Toolset {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkg", "widgets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pkg", "widgets", "widget.go"), []byte("package widgets\n\nfunc Frob() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example\n"), 0o644))
	return filesystem.New(root)
}

func TestReadFile_AllowedPath(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.ReadFile(context.Background(), "pkg/widgets/widget.go")
	require.NoError(t, err)
	assert.Contains(t, result.Content, "func Frob")
	assert.Equal(t, 3, result.Lines)
}

func TestReadFile_PathOutsideAllowedDirsIsDenied(t *testing.T) {
	fs := newSandbox(t)
	_, err := fs.ReadFile(context.Background(), "go.mod")
	var permErr *apperrors.PermissionDeniedError
	assert.ErrorAs(t, err, &permErr)
}

func TestReadFile_PathTraversalIsDenied(t *testing.T) {
	fs := newSandbox(t)
	_, err := fs.ReadFile(context.Background(), "../../../etc/passwd")
	var permErr *apperrors.PermissionDeniedError
	assert.ErrorAs(t, err, &permErr)
}

func TestReadFile_MissingFileIsNotFound(t *testing.T) {
	fs := newSandbox(t)
	_, err := fs.ReadFile(context.Background(), "pkg/widgets/missing.go")
	var notFound *apperrors.FileNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestWriteFile_CreatesFileUnderAllowedPath(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.WriteFile(context.Background(), "pkg/widgets/new.go", "package widgets\n", true, true)
	require.NoError(t, err)
	assert.Equal(t, "created", result.Action)
	assert.Nil(t, result.PreviousContent)
}

func TestWriteFile_ModifyingExistingFileReturnsPreviousContent(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.WriteFile(context.Background(), "pkg/widgets/widget.go", "package widgets\n", true, true)
	require.NoError(t, err)
	assert.Equal(t, "modified", result.Action)
	require.NotNil(t, result.PreviousContent)
	assert.Contains(t, *result.PreviousContent, "func Frob")
}

func TestWriteFile_DisallowedExtensionIsDenied(t *testing.T) {
	fs := newSandbox(t)
	_, err := fs.WriteFile(context.Background(), "pkg/widgets/binary.exe", "x", true, true)
	var permErr *apperrors.PermissionDeniedError
	assert.ErrorAs(t, err, &permErr)
}

func TestWriteFile_ProtectedPathRequiresExplicitNoConfirmation(t *testing.T) {
	fs := newSandbox(t)

	_, err := fs.WriteFile(context.Background(), "go.mod", "module example\n\nrequire x v1\n", false, true)
	var permErr *apperrors.PermissionDeniedError
	assert.ErrorAs(t, err, &permErr)

	_, err = fs.WriteFile(context.Background(), "go.mod", "module example\n\nrequire x v1\n", false, false)
	assert.Error(t, err) // go.mod is also outside allowedPaths regardless of protection
}

func TestListDirectory_NonRecursiveListsOnlyAllowedEntries(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.ListDirectory(context.Background(), "", false)
	require.NoError(t, err)
	var sawPkg bool
	for _, item := range result.Items {
		assert.NotEqual(t, "go.mod", item.Path)
		if item.Path == "pkg" {
			sawPkg = true
		}
	}
	assert.True(t, sawPkg)
}

func TestListDirectory_RecursiveFindsNestedFile(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.ListDirectory(context.Background(), "pkg", true)
	require.NoError(t, err)
	var found bool
	for _, item := range result.Items {
		if item.Path == "pkg/widgets/widget.go" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSearchCode_FindsMatchingLine(t *testing.T) {
	fs := newSandbox(t)
	result, err := fs.SearchCode(context.Background(), "func Frob", "", "*.go", 50)
	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "pkg/widgets/widget.go", result.Results[0].File)
}

func TestSearchCode_InvalidRegexIsRejected(t *testing.T) {
	fs := newSandbox(t)
	_, err := fs.SearchCode(context.Background(), "(unclosed", "", "*.go", 50)
	var invalid *apperrors.InvalidPatternError
	assert.ErrorAs(t, err, &invalid)
}
