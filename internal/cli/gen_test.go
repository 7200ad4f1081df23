package cli

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"go.uber.org/zap/zaptest"

	"github.com/rogpeppe/tuplekit/internal/emit"
	"github.com/rogpeppe/tuplekit/internal/resolve"
)

const shortDecls = `
goPackage: short
tuples:
- name: Short
  elems: [uint8, uint8, uint16]
filters:
- name: Bytes
  include: [uint8]
  exclude: [uint16]
  apply: [Short]
`

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	err := os.WriteFile(path, []byte(data), 0o666)
	qt.Assert(t, qt.IsNil(err))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	qt.Assert(t, qt.IsNil(err))
	return string(data)
}

func TestGenDemo(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.go")
	_, _, err := run(t, "gen", "-o", out, "../demo/tuples.cue")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(readFile(t, out), readFile(t, "../demo/tuples_tuplegen.go")))
}

func TestGenDefaultOutput(t *testing.T) {
	dirs := []string{t.TempDir(), t.TempDir(), t.TempDir()}
	var files []string
	for _, dir := range dirs {
		path := filepath.Join(dir, "decls.yaml")
		writeFile(t, path, shortDecls)
		files = append(files, path)
	}
	_, _, err := run(t, append([]string{"gen", "-j", "2"}, files...)...)
	qt.Assert(t, qt.IsNil(err))
	for _, dir := range dirs {
		src := readFile(t, filepath.Join(dir, "decls_tuplegen.go"))
		qt.Assert(t, qt.IsTrue(strings.HasPrefix(src, emit.Header+"\n")))
		qt.Assert(t, qt.StringContains(src, "type BytesShort = tuple.T2[uint8, uint8]\n"))
	}
}

const otherDecls = `
goPackage: short
tuples:
- name: Other
  elems: [uint16, uint8]
`

func TestGenSameDirectory(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.yaml")
	other := filepath.Join(dir, "other.yaml")
	writeFile(t, short, shortDecls)
	writeFile(t, other, otherDecls)
	_, _, err := run(t, "gen", "-j", "2", short, other)
	qt.Assert(t, qt.IsNil(err))

	src := readFile(t, filepath.Join(dir, "short_tuplegen.go"))
	qt.Assert(t, qt.StringContains(src, "type Short = tuple.T3[uint8, uint8, uint16]\n"))
	qt.Assert(t, qt.Not(qt.StringContains(src, "Other")))
	src = readFile(t, filepath.Join(dir, "other_tuplegen.go"))
	qt.Assert(t, qt.StringContains(src, "type Other = tuple.T2[uint16, uint8]\n"))
}

func TestGenSameOutput(t *testing.T) {
	dir := t.TempDir()
	cueFile := filepath.Join(dir, "decls.cue")
	yamlFile := filepath.Join(dir, "decls.yaml")
	writeFile(t, yamlFile, shortDecls)
	writeFile(t, cueFile, otherDecls)
	_, _, err := run(t, "gen", yamlFile, cueFile)
	qt.Assert(t, qt.ErrorMatches(err, `.*decls.yaml and .*decls.cue would both be generated into .*decls_tuplegen.go`))
	_, err = os.Stat(filepath.Join(dir, "decls_tuplegen.go"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestDefaultOutput(t *testing.T) {
	qt.Assert(t, qt.Equals(DefaultOutput("a/b/decls.cue"), "a/b/decls_tuplegen.go"))
	qt.Assert(t, qt.Equals(DefaultOutput("decls.yaml"), "decls_tuplegen.go"))
	qt.Assert(t, qt.Equals(DefaultOutput("decls"), "decls_tuplegen.go"))
}

func TestGenUpToDate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "decls.yaml")
	writeFile(t, path, shortDecls)
	logger := zaptest.NewLogger(t)
	qt.Assert(t, qt.IsNil(generate(path, "", logger)))
	out := DefaultOutput(path)
	info1, err := os.Stat(out)
	qt.Assert(t, qt.IsNil(err))

	// Regenerating identical code leaves the file alone.
	qt.Assert(t, qt.IsNil(generate(path, "", logger)))
	info2, err := os.Stat(out)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info2.ModTime(), info1.ModTime()))
}

func TestGenErrorWritesNothing(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.go")
	_, stderr, err := run(t, "gen", "-o", out, "testdata/bad.cue")
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrDuplicate))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrUnknownTuple))
	qt.Assert(t, qt.ErrorIs(err, resolve.ErrNoAssociation))
	qt.Assert(t, qt.StringContains(stderr, "testdata/bad.cue: F(U): unknown tuple"))
	_, err = os.Stat(out)
	qt.Assert(t, qt.IsTrue(errors.Is(err, os.ErrNotExist)))
}

func TestGenOutputWithSeveralFiles(t *testing.T) {
	_, _, err := run(t, "gen", "-o", "x.go", "a.cue", "b.cue")
	qt.Assert(t, qt.ErrorMatches(err, `cannot use --output with more than one declaration file`))
}

func TestGenBadJobs(t *testing.T) {
	_, _, err := run(t, "gen", "-j", "0", "a.cue")
	qt.Assert(t, qt.ErrorMatches(err, `--jobs must be at least 1`))
}

func TestGenMissingFile(t *testing.T) {
	_, _, err := run(t, "gen", filepath.Join(t.TempDir(), "missing.cue"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

func TestFileError(t *testing.T) {
	err := &FileError{
		Path: "x.cue",
		Err:  errors.Join(errors.New("one"), resolve.ErrCycle),
	}
	qt.Assert(t, qt.Equals(err.Error(), "x.cue: one\nx.cue: cyclic declaration"))
	qt.Assert(t, qt.ErrorIs(error(err), resolve.ErrCycle))
}
