/*
Package nodepath provides a structured representation of the path from the
project to a configuration node, e.g. `restricted.secondary_access[1]`.

A path is a dot-separated sequence of member names. A segment produced by an
adding function may carry the element index in brackets. The package
centralizes formatting and parsing of such paths.
*/
package nodepath
