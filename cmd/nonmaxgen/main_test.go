package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generatedFuncs(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "gen.go", src, 0)
	require.NoError(t, err)

	funcs := make(map[string]bool)
	for _, decl := range f.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			funcs[fn.Name.Name] = true
		}
	}
	return funcs
}

func TestGenerateLattice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, generate(&buf, "nonmax"))

	funcs := generatedFuncs(t, buf.Bytes())
	assert.Len(t, funcs, 78)

	for _, name := range []string{
		"NonMaxU16FromNonMaxU8",
		"NonMaxU16FromU8",
		"NonMaxI16FromNonMaxU8",
		"NonMaxI64FromU32",
		"NonMaxUintFromNonMaxU16",
		"NonMaxIntFromU16",
		"NonMaxU128FromNonMaxUint",
		"NonMaxI128FromNonMaxU64",
		"NonMaxI128FromInt",
	} {
		assert.True(t, funcs[name], name)
	}

	for _, name := range []string{
		"NonMaxU16FromNonMaxI8",   // signed to unsigned
		"NonMaxI16FromNonMaxU16",  // same width
		"NonMaxU32FromNonMaxU64",  // narrowing
		"NonMaxUintFromNonMaxU32", // uint may be 32 bits
		"NonMaxU64FromNonMaxUint", // uint may be 64 bits
		"NonMaxU8FromU8",
	} {
		assert.False(t, funcs[name], name)
	}
}

func TestWidens(t *testing.T) {
	byName := make(map[string]kind)
	for _, k := range kinds {
		byName[k.Name] = k
	}

	assert.True(t, widens(byName["U8"], byName["U16"]))
	assert.True(t, widens(byName["U32"], byName["I64"]))
	assert.True(t, widens(byName["Int"], byName["I128"]))
	assert.False(t, widens(byName["I8"], byName["U16"]))
	assert.False(t, widens(byName["U32"], byName["Uint"]))
	assert.False(t, widens(byName["U64"], byName["I64"]))
}

func TestGeneratedFileUpToDate(t *testing.T) {
	want, err := os.ReadFile("../../conversions_gen.go")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, generate(&buf, "nonmax"))
	assert.Equal(t, string(want), buf.String(), "run go generate to refresh conversions_gen.go")
}
