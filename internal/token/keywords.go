package token

var keywords = map[string]Kind{
	"class":   KwClass,
	"extends": KwExtends,
	"return":  KwReturn,
	"while":   KwWhile,
	"for":     KwFor,
	"var":     KwVar,
	"void":    KwVoid,
	"number":  KwNumber,
	"Promise": KwPromise,
	"await":   KwAwait,
	"self":    KwSelf,
	"true":    KwTrue,
	"false":   KwFalse,
}

// LookupKeyword reports the Kind for ident if it names a keyword.
// Keywords are case-sensitive; only the exact lowercase (or "Promise")
// spelling is recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
