package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satchel-dev/satchel/i18n"
)

const userSchema = `
type: User
rules:
  email: [required, email]
  age: ["int", "greaterThanEqual:0"]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateCommand_Valid(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchema)
	data := writeFile(t, dir, "ok.json", `{"email": "ada@example.com", "age": 36}`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--schema", schema, data})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "✓ "+data)
}

func TestValidateCommand_Violations(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchema)
	good := writeFile(t, dir, "ok.json", `{"email": "ada@example.com"}`)
	bad := writeFile(t, dir, "bad.json", `{"email": "nope", "age": 3}`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--schema", schema, good, bad})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed for 1 of 2 file(s)")
	assert.Contains(t, buf.String(), "✓ "+good)
	assert.Contains(t, buf.String(), "✗ "+bad)
	assert.Contains(t, buf.String(), "email at /email: value violates rule email")
}

func TestValidateCommand_MissingSchemaFlag(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "ok.json", `{}`)

	cmd := NewValidateCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{data})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
	assert.Contains(t, err.Error(), "schema")
}

func TestValidateCommand_MalformedData(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchema)
	data := writeFile(t, dir, "broken.json", `{"email":`)

	buf := &bytes.Buffer{}
	cmd := NewValidateCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--schema", schema, data})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode json")
}

func TestValidateCommand_JapaneseMessages(t *testing.T) {
	defer i18n.SetLanguage("en")

	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchema)
	bad := writeFile(t, dir, "bad.json", `{"age": 1}`)

	buf := &bytes.Buffer{}
	root := NewRootCommand()
	root.SetOut(buf)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"validate", "--lang", "ja", "--schema", schema, bad})

	require.Error(t, root.Execute())
	assert.Contains(t, buf.String(), "必須プロパティが不足しています")
}

func TestRootCommand_InvalidLang(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"rules", "--lang", "fr"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid lang")
}

func TestRulesCommand_ListsBuiltins(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRulesCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	for _, name := range []string{"Email", "DateFormat", "Uuid", "GreaterThan"} {
		assert.Contains(t, buf.String(), name)
	}
}

func TestSchemaCommand_ShowsCompiledTypes(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "types.yaml", `
type: User
rules:
  email: [required, email]
---
type: Event
rules:
  starts_at: ["dateFormat:Y-m-d H:i:s"]
dates: [starts_at]
`)

	buf := &bytes.Buffer{}
	cmd := NewSchemaCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{schema})

	require.NoError(t, cmd.Execute())
	out := buf.String()
	assert.Contains(t, out, "User\n  email: required, email\n")
	assert.Contains(t, out, "Event\n  starts_at: dateFormat:Y-m-d H:i:s\n  dates: starts_at\n")
}

func TestSchemaCommand_GoldenOutput(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "types.yaml", `
type: User
rules:
  email: [required, email]
  age: ["int", "greaterThanEqual:0"]
---
type: Event
rules:
  starts_at: [required, "dateFormat:Y-m-d"]
dates: [starts_at]
`)

	buf := &bytes.Buffer{}
	cmd := NewSchemaCommand(&rootOptions{Lang: "en"})
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{schema})

	require.NoError(t, cmd.Execute())
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "schema_output", buf.Bytes())
}

func TestRulesCommand_GoldenOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRulesCommand()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(nil)

	require.NoError(t, cmd.Execute())
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, "rules_output", buf.Bytes())
}
