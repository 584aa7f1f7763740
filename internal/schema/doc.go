// Package schema classifies the declared members of configuration node types
// into the categories a restricted script may use.
//
// Node types do not get scanned at runtime. Each type hands the registry an
// explicit list of Member declarations, built with the helpers in this
// package so that every binding stays statically typed. The classifier then
// turns every declaration into exactly one Category:
//
//   - Invisible: no marker. The member exists for host code only.
//   - AssignableProperty: a property marked Restricted. Scripts may only
//     replace its whole value with `name = expr`.
//   - ConfiguringFunction: a function marked Configuring. It runs a
//     configuration callback against a singleton the receiver already owns.
//   - AddingFunction: a function marked Adding. Every call constructs a new
//     element, configures it and appends it to a collection.
//   - PureFunction: a function marked Restricted that returns a value. It is
//     only usable inside expressions.
//
// Mistakes in declarations (several markers on one member, a configuring
// function without a callback, a pure function returning nothing, ...) are
// DefinitionErrors reported when the registry builds the type, before any
// script runs. Built types are immutable and cached per type name.
package schema
