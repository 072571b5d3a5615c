// Package genlib specializes template source files written against the
// placeholder types in package generic.
package genlib

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
)

const pkgPath = "github.com/joeshaw/linkedlist/generic"
const genericPkg = "generic"

var genericTypes = []string{"T", "U", "V"}

// Generate parses the template file filename, replaces each generic.T,
// generic.U and generic.V with the corresponding entry of typenames and
// returns the formatted source. If pkgName is not empty the package clause
// and the package doc comment are renamed to it; an _test suffix on the
// template's package is kept.
func Generate(filename, pkgName string, typenames ...string) ([]byte, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	var rerr error
	astutil.Apply(f, func(c *astutil.Cursor) bool {
		se, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}

		x, ok := se.X.(*ast.Ident)
		if !ok || x.Name != genericPkg {
			return true
		}

		for i, t := range genericTypes {
			if se.Sel.Name != t {
				continue
			}
			if i >= len(typenames) {
				if rerr == nil {
					rerr = fmt.Errorf("%s: %s.%s used but only %d type(s) given",
						fset.Position(se.Pos()), genericPkg, t, len(typenames))
				}
				return false
			}
			id := ast.NewIdent(typenames[i])
			id.NamePos = se.Pos()
			c.Replace(id)
			return false
		}

		return true
	}, nil)
	if rerr != nil {
		return nil, rerr
	}

	if !astutil.UsesImport(f, pkgPath) {
		astutil.DeleteImport(fset, f, pkgPath)
	}

	if pkgName != "" {
		rename(f, pkgName)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by gengen from %s; DO NOT EDIT.\n\n", filepath.Base(filename))
	if err = format.Node(&buf, fset, f); err != nil {
		return nil, err
	}

	return format.Source(buf.Bytes())
}

func rename(f *ast.File, pkgName string) {
	old := f.Name.Name
	if strings.HasSuffix(old, "_test") {
		pkgName += "_test"
	}
	f.Name.Name = pkgName

	if f.Doc == nil || len(f.Doc.List) == 0 {
		return
	}
	c := f.Doc.List[0]
	c.Text = strings.Replace(c.Text, "Package "+old+" ", "Package "+pkgName+" ", 1)
}
