// Package report reads the final state of the restricted extension after
// the configuration phase and renders it for the execution phase.
package report

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/vk/restricteddsl/internal/restricted"
	"github.com/vk/restricteddsl/internal/value"
	"gopkg.in/yaml.v3"
)

// Format selects how a snapshot is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format '%s': must be 'text', 'json' or 'yaml'", s)
	}
}

// AccessSnapshot is the read-out of one Access.
type AccessSnapshot struct {
	Name  string `json:"name" yaml:"name"`
	Read  bool   `json:"read" yaml:"read"`
	Write bool   `json:"write" yaml:"write"`
}

// Snapshot is the read-out of the extension.
type Snapshot struct {
	ID              string           `json:"id" yaml:"id"`
	ReferencePoint  value.Point      `json:"reference_point" yaml:"reference_point"`
	PrimaryAccess   AccessSnapshot   `json:"primary_access" yaml:"primary_access"`
	SecondaryAccess []AccessSnapshot `json:"secondary_access" yaml:"secondary_access"`
}

// Take reads the extension through its plain getters.
func Take(ext *restricted.Extension) Snapshot {
	s := Snapshot{
		ID:              ext.ID().Get(),
		ReferencePoint:  ext.ReferencePoint().GetOrElse(ext.Point(-1, -1)),
		PrimaryAccess:   accessSnapshot(ext.PrimaryAccess()),
		SecondaryAccess: []AccessSnapshot{},
	}
	for _, a := range ext.SecondaryAccess().Values() {
		s.SecondaryAccess = append(s.SecondaryAccess, accessSnapshot(a))
	}
	return s
}

func accessSnapshot(a *restricted.Access) AccessSnapshot {
	return AccessSnapshot{
		Name:  a.Name().Get(),
		Read:  a.Read().Get(),
		Write: a.Write().Get(),
	}
}

// Write renders s in format f.
func Write(w io.Writer, s Snapshot, f Format) error {
	switch f {
	case FormatJSON:
		return s.WriteJSON(w)
	case FormatYAML:
		return s.WriteYAML(w)
	default:
		return s.WriteText(w)
	}
}

// WriteText prints one line per value.
func (s Snapshot) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "id = %s\n", s.ID)
	fmt.Fprintf(&b, "referencePoint = %d, %d\n", s.ReferencePoint.X, s.ReferencePoint.Y)
	fmt.Fprintf(&b, "primaryAccess = { %s, %t, %t}\n", s.PrimaryAccess.Name, s.PrimaryAccess.Read, s.PrimaryAccess.Write)
	for _, a := range s.SecondaryAccess {
		fmt.Fprintf(&b, "secondaryAccess { %s, %t, %t}\n", a.Name, a.Read, a.Write)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON prints s as indented JSON.
func (s Snapshot) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteYAML prints s as YAML.
func (s Snapshot) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
