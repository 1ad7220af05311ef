package validator

// cxxReservedWords blocks method names that would collide with C++
// keywords once lowered to an external C-linkage symbol.
var cxxReservedWords = map[string]bool{
	"class": true, "struct": true, "void": true, "int": true, "return": true,
	"for": true, "while": true, "if": true, "else": true, "static": true,
	"namespace": true, "template": true, "typename": true, "const": true,
	"new": true, "delete": true, "extern": true, "inline": true, "auto": true,
}
