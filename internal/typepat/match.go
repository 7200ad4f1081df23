package typepat

import (
	"go/ast"
	"go/types"
)

type matcher struct {
	// vars holds the pattern variables (the values are unused here).
	vars     map[string]string
	bindings Bindings
}

func (m *matcher) isVar(x ast.Expr) (string, bool) {
	id, ok := x.(*ast.Ident)
	if !ok {
		return "", false
	}
	_, ok = m.vars[id.Name]
	return id.Name, ok
}

// bind binds the variable v to t, or checks that t is the same as
// the existing binding.
func (m *matcher) bind(v string, t ast.Expr) bool {
	s := types.ExprString(t)
	if old, ok := m.bindings[v]; ok {
		return old.str == s
	}
	m.bindings[v] = Type{expr: t, str: s}
	return true
}

func (m *matcher) match(p, t ast.Expr) bool {
	if v, ok := m.isVar(p); ok {
		return m.bind(v, t)
	}
	switch p := p.(type) {
	case *ast.Ident:
		t, ok := t.(*ast.Ident)
		return ok && t.Name == p.Name
	case *ast.SelectorExpr:
		t, ok := t.(*ast.SelectorExpr)
		return ok && t.Sel.Name == p.Sel.Name && m.match(p.X, t.X)
	case *ast.StarExpr:
		t, ok := t.(*ast.StarExpr)
		return ok && m.match(p.X, t.X)
	case *ast.ArrayType:
		t, ok := t.(*ast.ArrayType)
		if !ok || (p.Len == nil) != (t.Len == nil) {
			return false
		}
		if p.Len != nil && !m.matchLen(p.Len, t.Len) {
			return false
		}
		return m.match(p.Elt, t.Elt)
	case *ast.MapType:
		t, ok := t.(*ast.MapType)
		return ok && m.match(p.Key, t.Key) && m.match(p.Value, t.Value)
	case *ast.ChanType:
		t, ok := t.(*ast.ChanType)
		return ok && t.Dir == p.Dir && m.match(p.Value, t.Value)
	case *ast.Ellipsis:
		t, ok := t.(*ast.Ellipsis)
		return ok && m.match(p.Elt, t.Elt)
	case *ast.IndexExpr, *ast.IndexListExpr:
		px, pargs := unpackIndex(p)
		tx, targs := unpackIndex(t)
		if tx == nil || len(pargs) != len(targs) || !m.match(px, tx) {
			return false
		}
		for i := range pargs {
			if !m.match(pargs[i], targs[i]) {
				return false
			}
		}
		return true
	case *ast.FuncType:
		t, ok := t.(*ast.FuncType)
		return ok && m.matchFields(p.Params, t.Params) && m.matchFields(p.Results, t.Results)
	}
	// Struct and interface types must be identical.
	return types.ExprString(p) == types.ExprString(t)
}

// matchLen matches an array length. A pattern variable binds to the
// length expression as written.
func (m *matcher) matchLen(p, t ast.Expr) bool {
	if v, ok := m.isVar(p); ok {
		return m.bind(v, t)
	}
	return types.ExprString(p) == types.ExprString(t)
}

// matchFields matches parameter or result lists, ignoring names.
func (m *matcher) matchFields(p, t *ast.FieldList) bool {
	ptypes, ttypes := fieldTypes(p), fieldTypes(t)
	if len(ptypes) != len(ttypes) {
		return false
	}
	for i := range ptypes {
		if !m.match(ptypes[i], ttypes[i]) {
			return false
		}
	}
	return true
}

func fieldTypes(fl *ast.FieldList) []ast.Expr {
	if fl == nil {
		return nil
	}
	var xs []ast.Expr
	for _, f := range fl.List {
		n := max(len(f.Names), 1)
		for range n {
			xs = append(xs, f.Type)
		}
	}
	return xs
}

func unpackIndex(x ast.Expr) (ast.Expr, []ast.Expr) {
	switch x := x.(type) {
	case *ast.IndexExpr:
		return x.X, []ast.Expr{x.Index}
	case *ast.IndexListExpr:
		return x.X, x.Indices
	}
	return nil, nil
}

// subst returns a copy of x with identifiers in type positions
// replaced by their bindings in b.
func subst(x ast.Expr, b Bindings) ast.Expr {
	switch x := x.(type) {
	case nil:
		return nil
	case *ast.Ident:
		if t, ok := b[x.Name]; ok {
			return t.expr
		}
		return ast.NewIdent(x.Name)
	case *ast.ParenExpr:
		return subst(x.X, b)
	case *ast.SelectorExpr:
		return &ast.SelectorExpr{
			X:   subst(x.X, b),
			Sel: ast.NewIdent(x.Sel.Name),
		}
	case *ast.StarExpr:
		return &ast.StarExpr{X: subst(x.X, b)}
	case *ast.ArrayType:
		return &ast.ArrayType{
			Len: subst(x.Len, b),
			Elt: subst(x.Elt, b),
		}
	case *ast.MapType:
		return &ast.MapType{
			Key:   subst(x.Key, b),
			Value: subst(x.Value, b),
		}
	case *ast.ChanType:
		return &ast.ChanType{
			Dir:   x.Dir,
			Value: subst(x.Value, b),
		}
	case *ast.Ellipsis:
		return &ast.Ellipsis{Elt: subst(x.Elt, b)}
	case *ast.IndexExpr:
		return &ast.IndexExpr{
			X:     subst(x.X, b),
			Index: subst(x.Index, b),
		}
	case *ast.IndexListExpr:
		indices := make([]ast.Expr, len(x.Indices))
		for i, index := range x.Indices {
			indices[i] = subst(index, b)
		}
		return &ast.IndexListExpr{
			X:       subst(x.X, b),
			Indices: indices,
		}
	case *ast.FuncType:
		return &ast.FuncType{
			Func:    x.Func,
			Params:  substFields(x.Params, b),
			Results: substFields(x.Results, b),
		}
	case *ast.StructType:
		return &ast.StructType{
			Struct: x.Struct,
			Fields: substFields(x.Fields, b),
		}
	}
	// Interface types, literals and anything else are left as is.
	return x
}

func substFields(fl *ast.FieldList, b Bindings) *ast.FieldList {
	if fl == nil {
		return nil
	}
	out := &ast.FieldList{}
	for _, f := range fl.List {
		out.List = append(out.List, &ast.Field{
			Names: f.Names,
			Type:  subst(f.Type, b),
			Tag:   f.Tag,
		})
	}
	return out
}
