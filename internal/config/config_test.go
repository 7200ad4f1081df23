package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/tuplekit/internal/config"
)

const cueDecls = `
goPackage: "demo"
tuples: [{name: "Short", elems: ["uint8", "uint8", "uint16"]}]
filters: [{
	name: "Bytes"
	include: ["uint8", "[]uint8"]
	exclude: ["uint16", "uint32", "[T any] Option[T]"]
	apply: ["Short"]
}]
reducers: [{
	name: "Sum"
	acc:  "int"
	bindings: [{type: "uint8", combine: "addUint8"}]
	apply: ["Short"]
}]
`

const yamlDecls = `
goPackage: demo
tuples:
- name: Short
  elems: [uint8, uint8, uint16]
filters:
- name: Bytes
  include: [uint8, "[]uint8"]
  exclude: [uint16, uint32, "[T any] Option[T]"]
  apply: [Short]
reducers:
- name: Sum
  acc: int
  bindings:
  - type: uint8
    combine: addUint8
  apply: [Short]
`

var want = &config.File{
	GoPackage: "demo",
	Tuples: []config.Tuple{{
		Name:  "Short",
		Elems: []string{"uint8", "uint8", "uint16"},
	}},
	Filters: []config.Filter{{
		Name:    "Bytes",
		Include: []string{"uint8", "[]uint8"},
		Exclude: []string{"uint16", "uint32", "[T any] Option[T]"},
		Apply:   []string{"Short"},
	}},
	Reducers: []config.Reducer{{
		Name: "Sum",
		Acc:  "int",
		Bindings: []config.Binding{{
			Type:    "uint8",
			Combine: "addUint8",
		}},
		Apply: []string{"Short"},
	}},
}

func TestParseCUE(t *testing.T) {
	f, err := config.Parse("decls.cue", []byte(cueDecls))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Path, "decls.cue"))
	f.Path = ""
	qt.Assert(t, qt.DeepEquals(f, want))
}

func TestParseYAML(t *testing.T) {
	for _, name := range []string{"decls.yaml", "decls.yml"} {
		f, err := config.Parse(name, []byte(yamlDecls))
		qt.Assert(t, qt.IsNil(err))
		f.Path = ""
		qt.Assert(t, qt.DeepEquals(f, want))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decls.cue")
	err := os.WriteFile(path, []byte(cueDecls), 0o666)
	qt.Assert(t, qt.IsNil(err))
	f, err := config.Load(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Path, path))
	qt.Assert(t, qt.Equals(f.GoPackage, "demo"))

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.cue"))
	qt.Assert(t, qt.ErrorIs(err, os.ErrNotExist))
}

var parseErrorTests = []struct {
	testName string
	name     string
	data     string
	wantErr  string
}{{
	testName: "unknown-extension",
	name:     "decls.json",
	data:     `{}`,
	wantErr:  `decls.json: unknown declaration file extension ".json"`,
}, {
	testName: "missing-package",
	name:     "decls.cue",
	data:     `tuples: []`,
	wantErr:  `(?s)decls.cue: .*goPackage.*`,
}, {
	testName: "bad-identifier",
	name:     "decls.yaml",
	data:     "goPackage: demo\ntuples:\n- name: 1abc\n  elems: []\n",
	wantErr:  `(?s)decls.yaml: .*`,
}, {
	testName: "unknown-field",
	name:     "decls.cue",
	data:     `goPackage: "demo", tupels: []`,
	wantErr:  `(?s)decls.cue: .*tupels.*`,
}, {
	testName: "cue-syntax",
	name:     "decls.cue",
	data:     `goPackage: "demo`,
	wantErr:  `(?s)decls.cue: .*`,
}, {
	testName: "yaml-syntax",
	name:     "decls.yaml",
	data:     "goPackage: [demo\n",
	wantErr:  `(?s)decls.yaml: .*`,
}, {
	testName: "empty-yaml",
	name:     "decls.yaml",
	data:     "",
	wantErr:  `decls.yaml: empty declaration file`,
}}

func TestParseError(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			_, err := config.Parse(test.name, []byte(test.data))
			qt.Assert(t, qt.ErrorMatches(err, test.wantErr))
		})
	}
}
