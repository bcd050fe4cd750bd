// Package main содержит multichecker для статического анализа кода проекта.
//
// Multichecker объединяет следующие группы анализаторов:
//
// 1. Стандартные анализаторы из golang.org/x/tools/go/analysis/passes:
//   - nilness, shadow, unreachable, printf, assign, atomic, bools, buildtag
//   - copylocks: OutcomeSlot и App держат мьютекс и не должны копироваться
//   - httpresponse: проверяет использование ответа до проверки ошибки
//
// 2. Все анализаторы класса SA из staticcheck.io.
//
// 3. Дополнительные анализаторы staticcheck.io:
//   - ST1000: наличие комментария к пакету
//   - S1000: упрощение select с одним case
//
// 4. Публичные анализаторы:
//   - errcheck: проверяет обработку возвращаемых ошибок
//   - bodyclose: проверяет закрытие тела HTTP-ответа
//
// 5. Собственные анализаторы:
//   - noexit: запрещает прямой вызов os.Exit в функции main пакета main
//   - nodefaultclient: запрещает http.DefaultClient и http.Get/Head/Post/PostForm
//
// Использование:
//
//	go run ./cmd/staticlint ./...
package main

import (
	"github.com/kisielk/errcheck/errcheck"
	"github.com/timakin/bodyclose/passes/bodyclose"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/atomic"
	"golang.org/x/tools/go/analysis/passes/bools"
	"golang.org/x/tools/go/analysis/passes/buildtag"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/unreachable"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/tempizhere/shortyio/cmd/staticlint/analyzers"
)

func main() {
	multichecker.Main(collect()...)
}

// collect собирает список анализаторов
func collect() []*analysis.Analyzer {
	var list []*analysis.Analyzer

	list = append(list,
		nilness.Analyzer,
		shadow.Analyzer,
		unreachable.Analyzer,
		printf.Analyzer,
		assign.Analyzer,
		atomic.Analyzer,
		bools.Analyzer,
		buildtag.Analyzer,
		copylock.Analyzer,
		httpresponse.Analyzer,
	)

	for _, analyzer := range staticcheck.Analyzers {
		list = append(list, analyzer.Analyzer)
	}

	// ST класс: только комментарий к пакету
	for _, analyzer := range stylecheck.Analyzers {
		if analyzer.Analyzer.Name == "ST1000" {
			list = append(list, analyzer.Analyzer)
		}
	}

	// S класс: только упрощение select
	for _, analyzer := range simple.Analyzers {
		if analyzer.Analyzer.Name == "S1000" {
			list = append(list, analyzer.Analyzer)
		}
	}

	list = append(list,
		errcheck.Analyzer,
		bodyclose.Analyzer,
	)

	list = append(list,
		analyzers.NoExitAnalyzer,
		analyzers.NoDefaultClientAnalyzer,
	)

	return list
}
