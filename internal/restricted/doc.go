// Package restricted implements the "restricted" extension: the root
// configuration node exposed to scripts, and the Access nodes it owns.
//
// Script surface of the extension:
//
//	id               = "..."        assignable, convention "<no id>"
//	reference_point  = point(x, y)  assignable, convention point(-1, -1)
//	primary_access { ... }          configures the single primary Access
//	secondary_access { ... }        adds a new Access on every use
//	point(x, y)                     pure, builds a value.Point
//
// Everything else, such as the list holding secondary accesses, is only
// reachable from host code.
package restricted
