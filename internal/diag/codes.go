package diag

import "fmt"

// Code is a compact, stable diagnostic identifier. Ranges group codes by
// the error kinds of spec §7: lexical/syntax, validation, lowering,
// toolchain, artifact I/O, dynamic loader, and reload-policy violations.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000s)
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003

	// Syntax (2000s)
	SynUnexpectedToken   Code = 2001
	SynUnclosedDelimiter Code = 2002
	SynExpectSemicolon   Code = 2003
	SynForBadHeader      Code = 2004

	// DSL validation (3000s) — §4.1, §7 "DSL-validation"
	ValNotAClass            Code = 3001
	ValWrongBaseClass       Code = 3002
	ValFieldNotAllowed      Code = 3003
	ValNestedTypeNotAllowed Code = 3004
	ValMissingMain          Code = 3005
	ValMultipleMain         Code = 3006
	ValMainHasParams        Code = 3007
	ValMainReloadable       Code = 3008
	ValMissingType          Code = 3009
	ValUnsupportedType      Code = 3010
	ValUnknownAnnotation    Code = 3011
	ValTooManyAnnotations   Code = 3012
	ValBadSelfAccess        Code = 3013
	ValDuplicateMethodName  Code = 3014
	ValBadExternalName      Code = 3015

	// Lowering (3500s) — §4.2, §7 "Lowering"
	LowUnsupportedExpr Code = 3501
	LowUnsupportedStmt Code = 3502
	LowUnsupportedType Code = 3503
	LowUnknownCallee   Code = 3504

	// Toolchain (4000s) — §4.4, §7 "Toolchain"
	TcInvokeFailed   Code = 4001
	TcNonZeroExit    Code = 4002
	TcMissingCompiler Code = 4003

	// Artifact I/O (4500s) — §4.3, §7 "Artifact I/O"
	ArtPathAlloc     Code = 4501
	ArtCopyFailed    Code = 4502
	ArtLockExists    Code = 4503
	ArtDiskExhausted Code = 4504

	// Dynamic loader (5000s) — §4.6, §7 "Dynamic loader" (reported by the
	// generated binary's runtime, surfaced here only for documentation /
	// driver-side simulation in tests)
	LdrOpenFailed Code = 5001
	LdrSymFailed  Code = 5002
	LdrCloseFailed Code = 5003

	// Reload-policy violations (5500s) — R1-R4, §7 "Reload-policy violation"
	RldSignatureChanged Code = 5501
	RldDeleted          Code = 5502
	RldAdded            Code = 5503

	// Observability (6000s)
	ObsInfo    Code = 6001
	ObsTimings Code = 6002

	// Configuration (6500s)
	CfgParseFailed Code = 6501
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexUnknownChar:        "unrecognized character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",

	SynUnexpectedToken:   "unexpected token",
	SynUnclosedDelimiter: "unclosed delimiter",
	SynExpectSemicolon:   "expected statement terminator",
	SynForBadHeader:      "malformed for-loop header",

	ValNotAClass:            "expected a single top-level class declaration",
	ValWrongBaseClass:       "class must extend HotReloadProgram",
	ValFieldNotAllowed:      "field declarations are not supported",
	ValNestedTypeNotAllowed: "nested type declarations are not supported",
	ValMissingMain:          "program is missing a main method",
	ValMultipleMain:         "program declares more than one main method",
	ValMainHasParams:        "main must not take parameters",
	ValMainReloadable:       "main must not be annotated for reload",
	ValMissingType:          "parameter or return type must be explicit",
	ValUnsupportedType:      "unsupported type",
	ValUnknownAnnotation:    "unsupported annotation",
	ValTooManyAnnotations:   "a method may carry at most one annotation",
	ValBadSelfAccess:        "self-rooted access must reference a method of this class",
	ValDuplicateMethodName:  "duplicate method name",
	ValBadExternalName:      "method name is not a valid external symbol",

	LowUnsupportedExpr: "expression form cannot be lowered",
	LowUnsupportedStmt: "statement form cannot be lowered",
	LowUnsupportedType: "type cannot be lowered",
	LowUnknownCallee:   "call to unknown function",

	TcInvokeFailed:    "failed to invoke native toolchain",
	TcNonZeroExit:     "native toolchain reported a non-zero exit",
	TcMissingCompiler: "native toolchain not found",

	ArtPathAlloc:     "failed to allocate artifact paths",
	ArtCopyFailed:    "failed to copy shared object",
	ArtLockExists:    "lockfile already present",
	ArtDiskExhausted: "filesystem exhausted while writing build artifacts",

	LdrOpenFailed:  "dynamic library open failed",
	LdrSymFailed:   "symbol lookup failed",
	LdrCloseFailed: "dynamic library close failed",

	RldSignatureChanged: "signature changed; keeping previous implementation",
	RldDeleted:          "hot-reload function deleted; keeping previous implementation",
	RldAdded:            "new hot-reload function added after initial compile; ignoring",

	ObsInfo:    "informational",
	ObsTimings: "phase timings",

	CfgParseFailed: "failed to parse configuration file",
}

// ID returns a short, range-prefixed identifier like "VAL3001".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 3500:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 3500 && ic < 4000:
		return fmt.Sprintf("LOW%04d", ic)
	case ic >= 4000 && ic < 4500:
		return fmt.Sprintf("TC%04d", ic)
	case ic >= 4500 && ic < 5000:
		return fmt.Sprintf("ART%04d", ic)
	case ic >= 5000 && ic < 5500:
		return fmt.Sprintf("LDR%04d", ic)
	case ic >= 5500 && ic < 6000:
		return fmt.Sprintf("RLD%04d", ic)
	case ic >= 6000 && ic < 6500:
		return fmt.Sprintf("OBS%04d", ic)
	case ic >= 6500 && ic < 7000:
		return fmt.Sprintf("CFG%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable description for a code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
