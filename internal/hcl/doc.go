// Package hcl is the script front end. It parses HCL files into the
// statements understood by the script package: attributes become
// assignments and label-less blocks become configuring or adding calls, in
// source order.
package hcl
