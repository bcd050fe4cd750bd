// Package analyzers содержит собственные анализаторы проекта для multichecker.
package analyzers

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// NoExitAnalyzer запрещает прямой вызов os.Exit в функции main пакета main.
// Код завершения задаётся через logger.Fatal после возврата ошибки из run.
var NoExitAnalyzer = &analysis.Analyzer{
	Name:     "noexit",
	Doc:      "запрещает использование прямого вызова os.Exit в функции main пакета main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoExit,
}

// NoDefaultClientAnalyzer запрещает http.DefaultClient и функции http.Get, http.Head,
// http.Post, http.PostForm: *http.Client всегда передаётся явно.
var NoDefaultClientAnalyzer = &analysis.Analyzer{
	Name:     "nodefaultclient",
	Doc:      "запрещает http.DefaultClient и http.Get/Head/Post/PostForm",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runNoDefaultClient,
}

var defaultClientHelpers = map[string]bool{
	"DefaultClient": true,
	"Get":           true,
	"Head":          true,
	"Post":          true,
	"PostForm":      true,
}

func runNoExit(pass *analysis.Pass) (interface{}, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		fn := n.(*ast.FuncDecl)
		if fn.Name.Name != "main" || fn.Recv != nil || fn.Body == nil {
			return
		}
		ast.Inspect(fn.Body, func(n ast.Node) bool {
			call, ok := n.(*ast.CallExpr)
			if !ok {
				return true
			}
			if sel, ok := call.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Exit" && importedFrom(pass, sel, "os") {
				pass.Reportf(call.Pos(), "прямой вызов os.Exit в функции main запрещен")
			}
			return true
		})
	})
	return nil, nil
}

func runNoDefaultClient(pass *analysis.Pass) (interface{}, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	insp.Preorder([]ast.Node{(*ast.SelectorExpr)(nil)}, func(n ast.Node) {
		sel := n.(*ast.SelectorExpr)
		if defaultClientHelpers[sel.Sel.Name] && importedFrom(pass, sel, "net/http") {
			pass.Reportf(sel.Pos(), "использование http.%s запрещено, передайте *http.Client явно", sel.Sel.Name)
		}
	})
	return nil, nil
}

// importedFrom проверяет, что селектор обращается к пакету с указанным путём импорта
func importedFrom(pass *analysis.Pass, sel *ast.SelectorExpr, path string) bool {
	ident, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkg, ok := pass.TypesInfo.Uses[ident].(*types.PkgName)
	return ok && pkg.Imported().Path() == path
}
