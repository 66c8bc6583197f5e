package architecture_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

var repoWriteMethods = map[string]bool{
	"Create":     true,
	"CreateMany": true,
	"Update":     true,
	"Upsert":     true,
	"Delete":     true,
	"DeleteByID": true,
}

var aggregateWriteMethods = map[string]bool{
	"Create": true,
}

type structFields struct {
	repoFields      map[string]string
	aggregateFields map[string]string
}

type methodWrites struct {
	site       string
	repoWrites []string
	aggWrites  []string
}

// Services read through table repos but every multi-table write goes through
// an aggregate that owns the transaction.
func TestServicesWriteOnlyThroughAggregates(t *testing.T) {
	start, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root, err := findModuleRoot(start)
	if err != nil {
		t.Fatalf("find module root: %v", err)
	}

	servicesDir := filepath.Join(root, "internal", "services")
	matches, err := filepath.Glob(filepath.Join(servicesDir, "*.go"))
	if err != nil {
		t.Fatalf("glob services: %v", err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, path := range matches {
		if strings.HasSuffix(path, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, 0)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		files = append(files, f)
	}
	if len(files) == 0 {
		t.Fatalf("no service sources under %s", servicesDir)
	}

	fieldsByStruct := map[string]structFields{}
	for _, f := range files {
		collectStructFields(f, fieldsByStruct)
	}

	var methods []methodWrites
	for _, f := range files {
		methods = append(methods, collectMethodWrites(fset, f, fieldsByStruct)...)
	}

	aggregateCalls := 0
	var residual []string
	for _, m := range methods {
		aggregateCalls += len(m.aggWrites)
		for _, w := range m.repoWrites {
			residual = append(residual, m.site+": "+w)
		}
	}
	sort.Strings(residual)
	if len(residual) > 0 {
		t.Fatalf("services write through table repos directly:\n- %s", strings.Join(residual, "\n- "))
	}
	if aggregateCalls == 0 {
		t.Fatalf("expected at least one service method delegating writes to an aggregate")
	}
}

func collectStructFields(file *ast.File, out map[string]structFields) {
	for _, decl := range file.Decls {
		gd, ok := decl.(*ast.GenDecl)
		if !ok || gd.Tok != token.TYPE {
			continue
		}
		for _, spec := range gd.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if !ok {
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok || st.Fields == nil {
				continue
			}
			sf := structFields{
				repoFields:      map[string]string{},
				aggregateFields: map[string]string{},
			}
			for _, field := range st.Fields.List {
				if len(field.Names) == 0 {
					continue
				}
				sel, ok := field.Type.(*ast.SelectorExpr)
				if !ok {
					continue
				}
				pkgIdent, ok := sel.X.(*ast.Ident)
				if !ok {
					continue
				}
				typeName := sel.Sel.Name
				for _, name := range field.Names {
					switch {
					case pkgIdent.Name == "repos" && strings.HasSuffix(typeName, "Repo"):
						sf.repoFields[name.Name] = typeName
					case pkgIdent.Name == "domainagg" && strings.HasSuffix(typeName, "Aggregate"):
						sf.aggregateFields[name.Name] = typeName
					}
				}
			}
			if len(sf.repoFields) > 0 || len(sf.aggregateFields) > 0 {
				out[ts.Name.Name] = sf
			}
		}
	}
}

func collectMethodWrites(fset *token.FileSet, file *ast.File, fieldsByStruct map[string]structFields) []methodWrites {
	var out []methodWrites
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv == nil || fd.Body == nil || len(fd.Recv.List) == 0 {
			continue
		}
		recvName, recvType := recvInfo(fd.Recv.List[0])
		sf, ok := fieldsByStruct[recvType]
		if !ok || recvName == "" {
			continue
		}

		m := methodWrites{site: recvType + "." + fd.Name.Name + " (" + filepath.Base(fset.Position(fd.Pos()).Filename) + ")"}
		ast.Inspect(fd.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			fnSel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			rcvSel, ok := fnSel.X.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			base, ok := rcvSel.X.(*ast.Ident)
			if !ok || base.Name != recvName {
				return true
			}
			field, method := rcvSel.Sel.Name, fnSel.Sel.Name
			if _, ok := sf.repoFields[field]; ok && repoWriteMethods[method] {
				m.repoWrites = append(m.repoWrites, field+"."+method)
			}
			if _, ok := sf.aggregateFields[field]; ok && aggregateWriteMethods[method] {
				m.aggWrites = append(m.aggWrites, field+"."+method)
			}
			return true
		})
		out = append(out, m)
	}
	return out
}

func recvInfo(field *ast.Field) (string, string) {
	if field == nil || len(field.Names) == 0 {
		return "", ""
	}
	recvName := field.Names[0].Name
	switch t := field.Type.(type) {
	case *ast.StarExpr:
		if id, ok := t.X.(*ast.Ident); ok {
			return recvName, id.Name
		}
	case *ast.Ident:
		return recvName, t.Name
	}
	return "", ""
}
