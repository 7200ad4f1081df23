// Package config loads tuplegen declaration files.
//
// A declaration file is written in CUE or YAML and must conform to
// the #Config definition in schema.cue. For example, in YAML:
//
//	goPackage: demo
//	tuples:
//	- name: Short
//	  elems: [uint8, uint8, uint16]
//	filters:
//	- name: Bytes
//	  include: [uint8, "[]uint8"]
//	  exclude: [uint16, uint32, "[T any] Option[T]"]
//	  apply: [Short]
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaSrc []byte

// File holds the declarations of a single file.
type File struct {
	// Path holds the file the declarations were read from.
	Path string `json:"-"`

	GoPackage string    `json:"goPackage"`
	Imports   []string  `json:"imports,omitempty"`
	Tuples    []Tuple   `json:"tuples,omitempty"`
	Mappers   []Mapper  `json:"mappers,omitempty"`
	Filters   []Filter  `json:"filters,omitempty"`
	Reducers  []Reducer `json:"reducers,omitempty"`
}

// Tuple declares a named tuple type.
type Tuple struct {
	Name  string   `json:"name"`
	Elems []string `json:"elems"`
}

// Mapper declares a type-level mapping and the tuples it is applied to.
type Mapper struct {
	Name  string    `json:"name"`
	Rules []MapRule `json:"rules"`
	Apply []string  `json:"apply"`
}

// MapRule maps element types matching From to To. To may refer to
// the variables declared by From.
type MapRule struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Filter declares a filter predicate and the tuples it is applied to.
type Filter struct {
	Name    string   `json:"name"`
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
	Apply   []string `json:"apply"`
}

// Reducer declares a reducer and the tuples it is applied to.
type Reducer struct {
	Name     string    `json:"name"`
	Acc      string    `json:"acc"`
	Bindings []Binding `json:"bindings"`
	Apply    []string  `json:"apply"`
}

// Binding names the function that combines elements matching Type
// into the accumulator.
type Binding struct {
	Type    string `json:"type"`
	Combine string `json:"combine"`
}

// Load reads the declaration file at path. The format is chosen
// by the file extension: .cue, .yaml or .yml.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Parse parses the declarations in data. The name is used to choose
// the format and in error messages.
func Parse(name string, data []byte) (*File, error) {
	ctx := cuecontext.New()
	var v cue.Value
	switch ext := filepath.Ext(name); ext {
	case ".cue":
		v = ctx.CompileBytes(data, cue.Filename(name))
	case ".yaml", ".yml":
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if raw == nil {
			return nil, fmt.Errorf("%s: empty declaration file", name)
		}
		v = ctx.Encode(raw)
	default:
		return nil, fmt.Errorf("%s: unknown declaration file extension %q", name, ext)
	}
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("%s: %s", name, errors.Details(err, nil))
	}
	schema := ctx.CompileBytes(schemaSrc, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		panic(fmt.Errorf("invalid embedded schema: %v", err))
	}
	v = schema.LookupPath(cue.ParsePath("#Config")).Unify(v)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("%s: %s", name, errors.Details(err, nil))
	}
	var f File
	if err := v.Decode(&f); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	f.Path = name
	return &f, nil
}
