// Package runtime carries the C++ prelude the generated code compiles
// against: the dynamic value type var, the List/Set/Map collection
// wrappers and the Builtin namespace. The header is embedded so the
// compile and build commands can drop it next to the emitted translation
// unit.
package runtime

import _ "embed"

// HeaderName is the filename the generated #include expects.
const HeaderName = "util.hpp"

//go:embed util.hpp
var UtilHPP []byte
