// Package plugin provides the Project that plugins register extensions and
// tasks with.
//
// A Project is itself a configuration node. Every extension created on it
// becomes a configuring function of the project's schema, so a script
// configures an extension by opening a block named after it:
//
//	restricted {
//	  id = "edge"
//	}
//
// Tasks run after configuration and only read the extensions.
package plugin
