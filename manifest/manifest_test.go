package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/scaffolder/manifest"
)

func TestEntries_sorted_by_output_path(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{}.SetFiles(manifest.Manifest{
		"a.tmpl": "z/out.txt",
		"b.tmpl": "a/out.txt",
		"c.tmpl": "m/out.txt",
	})

	entries := de.Entries()
	require.Len(t, entries, 3)

	assert.Equal(t, "b.tmpl", entries[0].Key)
	assert.Equal(t, "a/out.txt", entries[0].OutputPath)
	assert.Equal(t, "c.tmpl", entries[1].Key)
	assert.Equal(t, "a.tmpl", entries[2].Key)
}

func TestEntries_ties_broken_by_key(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{}.SetFiles(manifest.Manifest{
		"b.tmpl": "out.txt",
		"a.tmpl": "out.txt",
	})

	entries := de.Entries()
	require.Len(t, entries, 2)

	assert.Equal(t, "a.tmpl", entries[0].Key)
	assert.Equal(t, "b.tmpl", entries[1].Key)
}

func TestSetFiles_replaces_wholesale(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{}.SetFiles(manifest.Manifest{
		"old.tmpl": "old.txt",
	})

	de = de.SetFiles(manifest.Manifest{
		"new.tmpl": "new.txt",
	})

	entries := de.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "new.tmpl", entries[0].Key)
}

func TestSetFiles_does_not_mutate_original(t *testing.T) {
	t.Parallel()

	orig := manifest.Definition{Name: "demo"}

	_ = orig.SetFiles(manifest.Manifest{
		"a.tmpl": "a.txt",
	})

	assert.Empty(t, orig.Files)
}

func TestSetDelimiters(t *testing.T) {
	t.Parallel()

	de := manifest.Definition{}.SetDelimiters("<%", "%>")

	assert.Equal(t, "<%", de.StartTag)
	assert.Equal(t, "%>", de.EndTag)
}

func TestLoad_yaml_definition(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "scaffold.yaml")

	content := `name: perl-module
template_dir: /usr/share/perl-module/templates
start_tag: "{{{"
end_tag: "}}}"
files:
  Module.pm.tmpl: lib/Foo/Local.pm
  Makefile.PL.tmpl: Makefile.PL
`
	require.NoError(
		t, os.WriteFile(pa, []byte(content), 0o600),
	)

	de, err := manifest.Load(pa)
	require.NoError(t, err)

	assert.Equal(t, "perl-module", de.Name)
	assert.Equal(
		t,
		"/usr/share/perl-module/templates",
		de.TemplateDir,
	)
	assert.Equal(t, "{{{", de.StartTag)
	assert.Equal(t, "}}}", de.EndTag)
	assert.Equal(
		t,
		"lib/Foo/Local.pm",
		de.Files["Module.pm.tmpl"],
	)
	assert.Len(t, de.Files, 2)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := manifest.Load("/nonexistent/scaffold.yaml")
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), "loading scaffold definition",
	)
}

func TestLoad_invalid_yaml(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := filepath.Join(dir, "bad.yaml")

	require.NoError(t, os.WriteFile(
		pa, []byte("files: [not: a: mapping"), 0o600,
	))

	_, err := manifest.Load(pa)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding yaml")
}
