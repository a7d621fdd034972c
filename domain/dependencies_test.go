package domain_test

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/nftmart-dev/nftmart-contract-sdk/"

// TestDomainHasNoOuterDependencies verifies that the domain layer
// does not import from the contract, host or sandbox layers.
func TestDomainHasNoOuterDependencies(t *testing.T) {
	fset := token.NewFileSet()

	for _, pkg := range []string{"entities", "errors", "ports"} {
		files, err := filepath.Glob(filepath.Join(".", pkg, "*.go"))
		require.NoError(t, err, "failed to glob %s files", pkg)

		for _, file := range files {
			// test files may import testify and friends
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			checkFileImports(t, fset, file, pkg)
		}
	}
}

func checkFileImports(t *testing.T, fset *token.FileSet, filename, pkg string) {
	t.Helper()

	f, err := parser.ParseFile(fset, filename, nil, parser.ImportsOnly)
	require.NoError(t, err, "failed to parse %s", filename)

	forbidden := []string{
		modulePath + "application",
		modulePath + "cmd",
		modulePath + "contract",
		modulePath + "exttest",
		modulePath + "hostfuncs",
		modulePath + "infrastructure",
		modulePath + "internal",
		modulePath + "log",
		modulePath + "sandbox",
		"github.com/tetratelabs/wazero",
	}

	for _, imp := range f.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)

		for _, prefix := range forbidden {
			assert.False(t, strings.HasPrefix(importPath, prefix),
				"domain/%s (%s) must not import %s", pkg, filepath.Base(filename), importPath)
		}

		if strings.HasPrefix(importPath, modulePath) {
			assert.True(t, strings.HasPrefix(importPath, modulePath+"domain/"),
				"domain/%s (%s) imports non-domain package: %s", pkg, filepath.Base(filename), importPath)
		}
	}
}

func TestDomainPackagesExist(t *testing.T) {
	for _, dir := range []string{"entities", "errors", "ports"} {
		files, err := filepath.Glob(filepath.Join(".", dir, "*.go"))
		require.NoError(t, err, "failed to check %s directory", dir)
		assert.NotEmpty(t, files, "domain/%s should contain Go files", dir)
	}
}
