package resolve

import (
	"errors"
	"fmt"
	"path"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rogpeppe/tuplekit/internal/config"
	"github.com/rogpeppe/tuplekit/internal/declgraph"
	"github.com/rogpeppe/tuplekit/internal/typepat"
	"github.com/rogpeppe/tuplekit/tuple"
)

// Program holds everything needed to generate the code for one
// declaration file.
type Program struct {
	// Package holds the name of the generated package.
	Package string

	// Imports holds the imports declared by the file.
	Imports []Import

	// Decls holds the resolved declarations, ordered so that each
	// comes after the declarations it refers to.
	Decls []*Decl

	// Graph holds the dependencies between the declarations.
	Graph *declgraph.Graph
}

// Import is a package imported by the generated code.
type Import struct {
	// Name holds the name the package is imported as. Unless given
	// explicitly, it is the last element of the path, ignoring a
	// major version suffix such as /v2.
	Name string
	// Explicit reports whether Name was given in the declaration
	// rather than taken from the path.
	Explicit bool
	Path     string
}

// Decl is a resolved declaration. Kind determines which fields are
// set.
type Decl struct {
	Kind declgraph.Kind

	// Name holds the name of the emitted type alias, or of the
	// reduce function when Kind is declgraph.Reduced.
	Name string

	// Source names the mapper, filter or reducer.
	// It is empty for declared tuples.
	Source string

	// Tuple names the tuple the source is applied to, or the
	// declared tuple itself.
	Tuple string

	// Elems holds the element types of Tuple.
	Elems []typepat.Type

	// Out holds the element types of the mapped or filtered tuple.
	Out []typepat.Type

	// Keep holds, for a filter, whether each element is kept.
	Keep []bool

	// Func holds the name of the filter function.
	Func string

	// Plan holds the names of the plan step types, one for each
	// element followed by one for the end of the list.
	Plan []string

	// Acc holds the accumulator type of a reducer.
	Acc typepat.Type

	// Combine holds the combine function for each element, and
	// Combiners the names of the types that bind them.
	Combine   []string
	Combiners []string
}

func (d *Decl) String() string {
	if d.Source == "" {
		return "tuple " + d.Tuple
	}
	return fmt.Sprintf("%s %s(%s)", d.Kind, d.Source, d.Tuple)
}

// idents returns every top-level identifier emitted for d.
func (d *Decl) idents() []string {
	ids := []string{d.Name}
	if d.Func != "" {
		ids = append(ids, d.Func)
	}
	ids = append(ids, d.Plan...)
	return append(ids, d.Combiners...)
}

// label returns the text shown for d in a declaration graph.
func (d *Decl) label() string {
	if d.Source == "" {
		return d.Name + " " + NewList(d.Elems...).String()
	}
	return fmt.Sprintf("%s(%s)", d.Source, d.Tuple)
}

// refs returns the names that d's types refer to.
func (d *Decl) refs() []string {
	var refs []string
	if d.Source != "" {
		refs = append(refs, d.Tuple)
	}
	types := d.Elems
	if d.Source != "" {
		types = d.Out
	}
	for _, t := range types {
		refs = append(refs, t.Names()...)
	}
	if !d.Acc.IsZero() {
		refs = append(refs, d.Acc.Names()...)
	}
	return refs
}

// Resolve resolves all the declarations in f. All errors are
// returned together; if there are any, the returned Program is nil.
func Resolve(f *config.File, logger *zap.Logger) (*Program, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &resolver{
		logger: logger,
		tuples: make(map[string]*Tuple),
		owners: make(map[string]*Decl),
		title:  cases.Title(language.Und, cases.NoLower),
	}
	imports := r.imports(f.Imports)
	for _, t := range f.Tuples {
		r.tuple(t)
	}
	for _, m := range f.Mappers {
		r.mapper(m)
	}
	for _, p := range f.Filters {
		r.filter(p)
	}
	for _, red := range f.Reducers {
		r.reducer(red)
	}
	if len(r.errs) > 0 {
		return nil, errors.Join(r.errs...)
	}
	g, decls, err := r.sort()
	if err != nil {
		return nil, err
	}
	logger.Debug("resolved declarations",
		zap.String("file", f.Path),
		zap.Int("decls", len(decls)),
	)
	return &Program{
		Package: f.GoPackage,
		Imports: imports,
		Decls:   decls,
		Graph:   g,
	}, nil
}

type resolver struct {
	logger *zap.Logger
	tuples map[string]*Tuple
	decls  []*Decl
	// owners maps each emitted identifier to the declaration
	// that emits it.
	owners map[string]*Decl
	title  cases.Caser
	errs   []error
}

func (r *resolver) errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Errorf(format, args...))
}

// add records d, checking that its identifiers are not already
// in use.
func (r *resolver) add(d *Decl) bool {
	for _, id := range d.idents() {
		owner, ok := r.owners[id]
		if !ok {
			continue
		}
		err := &Error{
			Kind:   ErrDuplicate,
			Decl:   d.Source,
			Tuple:  d.Tuple,
			Index:  -1,
			Detail: fmt.Sprintf("%s already declared by %s", id, owner),
		}
		if d.Source == "" {
			err.Decl, err.Tuple = d.Tuple, ""
		}
		r.errs = append(r.errs, err)
		return false
	}
	for _, id := range d.idents() {
		r.owners[id] = d
	}
	r.decls = append(r.decls, d)
	return true
}

var versionElem = regexp.MustCompile(`^v[0-9]+$`)

// runtimePackages holds the names of the packages that generated
// code imports itself.
var runtimePackages = []string{"filter", "reduce", "tuple"}

func (r *resolver) imports(specs []string) []Import {
	var imports []Import
	for _, spec := range specs {
		fields := strings.Fields(spec)
		var imp Import
		switch len(fields) {
		case 1:
			imp.Path = fields[0]
			imp.Name = path.Base(imp.Path)
			if dir := path.Dir(imp.Path); versionElem.MatchString(imp.Name) && dir != "." {
				imp.Name = path.Base(dir)
			}
		case 2:
			imp.Name, imp.Path, imp.Explicit = fields[0], fields[1], true
		default:
			r.errorf("invalid import %q", spec)
			continue
		}
		if slices.Contains(runtimePackages, imp.Name) {
			r.errorf("import %q: package name %s is used by generated code; import it under another name", spec, imp.Name)
			continue
		}
		imports = append(imports, imp)
	}
	return imports
}

func (r *resolver) parseTypes(what string, srcs []string) ([]typepat.Type, bool) {
	types := make([]typepat.Type, len(srcs))
	ok := true
	for i, src := range srcs {
		t, err := typepat.ParseType(src)
		if err != nil {
			r.errorf("%s: element %d: %w", what, i, err)
			ok = false
			continue
		}
		types[i] = t
	}
	return types, ok
}

func (r *resolver) parsePatterns(what string, srcs []string) ([]*typepat.Pattern, bool) {
	pats := make([]*typepat.Pattern, len(srcs))
	ok := true
	for i, src := range srcs {
		p, err := typepat.Parse(src)
		if err != nil {
			r.errorf("%s: %w", what, err)
			ok = false
			continue
		}
		pats[i] = p
	}
	return pats, ok
}

func (r *resolver) tuple(t config.Tuple) {
	elems, ok := r.parseTypes("tuple "+t.Name, t.Elems)
	if !ok {
		return
	}
	if len(elems) > tuple.MaxArity {
		r.errs = append(r.errs, &Error{
			Kind:   ErrArity,
			Decl:   t.Name,
			Index:  -1,
			Detail: fmt.Sprintf("%d elements, maximum is %d", len(elems), tuple.MaxArity),
		})
		return
	}
	d := &Decl{
		Kind:  declgraph.Tuple,
		Name:  t.Name,
		Tuple: t.Name,
		Elems: elems,
	}
	if r.add(d) {
		r.tuples[t.Name] = &Tuple{Name: t.Name, Elems: NewList(elems...)}
	}
}

// applied returns the tuples named in apply.
func (r *resolver) applied(decl string, apply []string) []*Tuple {
	var ts []*Tuple
	for _, name := range apply {
		t, ok := r.tuples[name]
		if !ok {
			r.errs = append(r.errs, &Error{
				Kind:  ErrUnknownTuple,
				Decl:  decl,
				Tuple: name,
				Index: -1,
			})
			continue
		}
		ts = append(ts, t)
	}
	return ts
}

// unboundVar returns a name in to that is spelled like a pattern
// variable (a single upper case letter) but is not declared by from.
func unboundVar(from, to *typepat.Pattern) (string, bool) {
	for _, name := range to.Subst(nil).Names() {
		r, size := utf8.DecodeRuneInString(name)
		if size == len(name) && unicode.IsUpper(r) && !slices.Contains(from.Vars(), name) {
			return name, true
		}
	}
	return "", false
}

func (r *resolver) mapper(cm config.Mapper) {
	m := &Mapper{Name: cm.Name}
	ok := true
	for _, rule := range cm.Rules {
		from, err := typepat.Parse(rule.From)
		if err != nil {
			r.errorf("mapper %s: %w", cm.Name, err)
			ok = false
			continue
		}
		to, err := typepat.Parse(rule.To)
		if err != nil {
			r.errorf("mapper %s: %w", cm.Name, err)
			ok = false
			continue
		}
		if to.IsGeneric() {
			r.errorf("mapper %s: result %q cannot declare pattern variables", cm.Name, rule.To)
			ok = false
			continue
		}
		if v, found := unboundVar(from, to); found {
			r.errorf("mapper %s: result %q uses %s, which is not a pattern variable of %q", cm.Name, rule.To, v, rule.From)
			ok = false
			continue
		}
		m.Rules = append(m.Rules, Rule{From: from, To: to})
	}
	for _, t := range r.applied(cm.Name, cm.Apply) {
		if !ok {
			continue
		}
		out, err := m.Map(t)
		if err != nil {
			r.errs = append(r.errs, err)
			continue
		}
		d := &Decl{
			Kind:   declgraph.Mapped,
			Name:   r.derivedName(cm.Name, t.Name),
			Source: cm.Name,
			Tuple:  t.Name,
			Elems:  t.Elems.Elems(),
			Out:    out.Elems(),
		}
		r.logger.Debug("mapped tuple",
			zap.String("mapper", cm.Name),
			zap.String("tuple", t.Name),
			zap.String("result", out.String()),
		)
		r.add(d)
	}
}

func (r *resolver) filter(cf config.Filter) {
	include, iok := r.parsePatterns("filter "+cf.Name, cf.Include)
	exclude, eok := r.parsePatterns("filter "+cf.Name, cf.Exclude)
	p := &Predicate{
		Name:    cf.Name,
		Include: include,
		Exclude: exclude,
	}
	for _, t := range r.applied(cf.Name, cf.Apply) {
		if !iok || !eok {
			continue
		}
		kept, markers, err := p.Filter(t)
		if err != nil {
			r.errs = append(r.errs, err)
			continue
		}
		name := r.derivedName(cf.Name, t.Name)
		d := &Decl{
			Kind:   declgraph.Filtered,
			Name:   name,
			Source: cf.Name,
			Tuple:  t.Name,
			Elems:  t.Elems.Elems(),
			Out:    kept.Elems(),
			Func:   "Filter" + name,
			Plan:   stepNames(name, "Plan", t.Elems.Len()+1),
		}
		for _, m := range markers.Elems() {
			d.Keep = append(d.Keep, m.String() == Include.String())
		}
		r.logger.Debug("filtered tuple",
			zap.String("filter", cf.Name),
			zap.String("tuple", t.Name),
			zap.String("result", kept.String()),
		)
		r.add(d)
	}
}

func (r *resolver) reducer(cr config.Reducer) {
	ok := true
	acc, err := typepat.ParseType(cr.Acc)
	if err != nil {
		r.errorf("reducer %s: accumulator: %w", cr.Name, err)
		ok = false
	}
	red := &Reducer{Name: cr.Name, Acc: acc}
	for _, b := range cr.Bindings {
		p, err := typepat.Parse(b.Type)
		if err != nil {
			r.errorf("reducer %s: %w", cr.Name, err)
			ok = false
			continue
		}
		red.Bindings = append(red.Bindings, Binding{Type: p, Combine: b.Combine})
	}
	for _, t := range r.applied(cr.Name, cr.Apply) {
		if !ok {
			continue
		}
		funcs, err := red.Bind(t)
		if err != nil {
			r.errs = append(r.errs, err)
			continue
		}
		base := r.derivedName(cr.Name, t.Name)
		n := t.Elems.Len()
		d := &Decl{
			Kind:      declgraph.Reduced,
			Name:      "Reduce" + base,
			Source:    cr.Name,
			Tuple:     t.Name,
			Elems:     t.Elems.Elems(),
			Acc:       acc,
			Combine:   funcs,
			Plan:      stepNames(base, "Fold", n+1),
			Combiners: stepNames(base, "Combine", n),
		}
		r.logger.Debug("reduced tuple",
			zap.String("reducer", cr.Name),
			zap.String("tuple", t.Name),
			zap.Strings("combine", funcs),
		)
		r.add(d)
	}
}

// derivedName returns the name of the result of applying source
// to the named tuple.
func (r *resolver) derivedName(source, tuple string) string {
	return r.title.String(source) + r.title.String(tuple)
}

// stepNames returns n unexported identifiers derived from base.
func stepNames(base, what string, n int) []string {
	r, size := utf8.DecodeRuneInString(base)
	prefix := string(unicode.ToLower(r)) + base[size:] + what
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprint(prefix, i)
	}
	return names
}

// sort builds the declaration graph and returns the declarations in
// dependency order.
func (r *resolver) sort() (*declgraph.Graph, []*Decl, error) {
	g := new(declgraph.Graph)
	byName := make(map[string]*Decl)
	for _, d := range r.decls {
		g.AddNode(declgraph.Node{
			Name:  d.Name,
			Label: d.label(),
			Kind:  d.Kind,
		})
		byName[d.Name] = d
	}
	for _, d := range r.decls {
		for _, ref := range d.refs() {
			if g.Has(ref) {
				g.AddEdge(d.Name, ref)
			}
		}
	}
	nodes, err := g.Sort()
	if err != nil {
		var cerr *declgraph.CycleError
		if !errors.As(err, &cerr) {
			return nil, nil, err
		}
		errs := make([]error, len(cerr.Cycles))
		for i, c := range cerr.Cycles {
			errs[i] = &Error{
				Kind:   ErrCycle,
				Decl:   c[0],
				Index:  -1,
				Detail: strings.Join(c, " -> ") + " -> " + c[0],
			}
		}
		return nil, nil, errors.Join(errs...)
	}
	decls := make([]*Decl, len(nodes))
	for i, n := range nodes {
		decls[i] = byName[n.Name]
	}
	return g, decls, nil
}
