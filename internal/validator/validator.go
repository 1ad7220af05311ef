// Package validator implements V: it enforces the DSL subset described in
// §4.1 over an already-parsed ast.Program, classifies each method as main,
// hotreload, or static, and rejects any construct the lowerer cannot emit.
package validator

import (
	"hotreload/internal/ast"
	"hotreload/internal/diag"
	"hotreload/internal/source"
)

const reloadAnnotation = "reload"
const requiredBaseName = "HotReloadProgram"

// Result is the outcome of validating one Program.
type Result struct {
	OK      bool
	Main    *ast.Method
	Units   []*ast.Method // Reloadable == true, in source order
	Statics []*ast.Method // Reloadable == false, excluding main
}

// Validate checks prog against every invariant in §4.1/§3 and classifies
// its methods. Diagnostics are sent to reporter; Validate never panics on
// a malformed program, it reports and returns OK == false.
func Validate(prog *ast.Program, reporter diag.Reporter) Result {
	v := &validator{reporter: reporter, ok: true}
	return v.run(prog)
}

type validator struct {
	reporter diag.Reporter
	ok       bool
}

func (v *validator) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) {
	if sev == diag.SevError || sev == diag.SevFatal {
		v.ok = false
	}
	if v.reporter != nil {
		v.reporter.Report(code, sev, sp, msg, nil)
	}
}

func (v *validator) run(prog *ast.Program) Result {
	res := Result{}
	if prog == nil {
		return Result{OK: false}
	}

	if prog.BaseName != requiredBaseName {
		v.report(diag.ValWrongBaseClass, diag.SevFatal, prog.Span,
			"class must extend 'HotReloadProgram', got '"+prog.BaseName+"'")
	}

	seen := map[string]bool{}
	var mains []*ast.Method
	for _, m := range prog.Methods {
		if seen[m.Name] {
			v.report(diag.ValDuplicateMethodName, diag.SevFatal, m.Span, "duplicate method name '"+m.Name+"'")
			continue
		}
		seen[m.Name] = true

		if m.Annotation != nil && m.Annotation.Name != reloadAnnotation {
			v.report(diag.ValUnknownAnnotation, diag.SevFatal, m.Annotation.Span,
				"unsupported annotation '@"+m.Annotation.Name+"'; only '@reload' is recognized")
		}

		if m.Name == "main" {
			mains = append(mains, m)
			continue
		}

		if cxxReservedWords[m.Name] {
			v.report(diag.ValBadExternalName, diag.SevFatal, m.Span,
				"'"+m.Name+"' is a reserved word in the target language and cannot be used as a method name")
		}

		if m.Annotation != nil && m.Annotation.Name == reloadAnnotation {
			m.Reloadable = true
			res.Units = append(res.Units, m)
		} else {
			res.Statics = append(res.Statics, m)
		}

		v.validateSelfAccess(m)
	}

	switch len(mains) {
	case 0:
		v.report(diag.ValMissingMain, diag.SevFatal, prog.Span, "program is missing a 'main' method")
	case 1:
		main := mains[0]
		if len(main.Params) != 0 {
			v.report(diag.ValMainHasParams, diag.SevFatal, main.Span, "'main' must not take parameters")
		}
		if main.Annotation != nil {
			v.report(diag.ValMainReloadable, diag.SevFatal, main.Span, "'main' must not be annotated for reload")
		}
		v.validateSelfAccess(main)
		res.Main = main
	default:
		for _, m := range mains[1:] {
			v.report(diag.ValMultipleMain, diag.SevFatal, m.Span, "program declares more than one 'main' method")
		}
	}

	res.OK = v.ok
	return res
}
