package report_test

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"github.com/vk/restricteddsl/internal/report"
	"github.com/vk/restricteddsl/internal/restricted"
	"github.com/vk/restricteddsl/internal/testutil"
	"github.com/vk/restricteddsl/internal/value"
	"gopkg.in/yaml.v3"
)

func configured(t *testing.T) report.Snapshot {
	t.Helper()

	f := testutil.NewExtension(t)
	ext := f.Extension
	ext.ID().Set("edge")
	ext.ReferencePoint().Set(value.NewPoint(3, 4))
	require.NoError(t, ext.ConfigurePrimaryAccess(func(a *restricted.Access) error {
		a.Read().Set(true)
		return nil
	}))
	for _, name := range []string{"a", "b"} {
		_, err := ext.AddSecondaryAccess(f.Ctx, func(a *restricted.Access) error {
			a.Name().Set(name)
			a.Write().Set(name == "b")
			return nil
		})
		require.NoError(t, err)
	}
	return report.Take(ext)
}

func TestWriteText_Defaults(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	f := testutil.NewExtension(t)
	buf := &bytes.Buffer{}

	// --- Act ---
	err := report.Take(f.Extension).WriteText(buf)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "id = <no id>\n"+
		"referencePoint = -1, -1\n"+
		"primaryAccess = { primary, false, false}\n", buf.String())
}

func TestWriteText_Configured(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	require.NoError(t, report.Write(buf, configured(t), report.FormatText))

	require.Equal(t, "id = edge\n"+
		"referencePoint = 3, 4\n"+
		"primaryAccess = { primary, true, false}\n"+
		"secondaryAccess { a, false, false}\n"+
		"secondaryAccess { b, false, true}\n", buf.String())
}

func TestWriteJSONAndYAML(t *testing.T) {
	t.Parallel()

	snap := configured(t)

	jsonBuf := &bytes.Buffer{}
	require.NoError(t, report.Write(jsonBuf, snap, report.FormatJSON))
	require.Contains(t, jsonBuf.String(), `"reference_point": {`)
	var fromJSON report.Snapshot
	require.NoError(t, json.Unmarshal(jsonBuf.Bytes(), &fromJSON))
	require.Equal(t, snap, fromJSON)

	yamlBuf := &bytes.Buffer{}
	require.NoError(t, report.Write(yamlBuf, snap, report.FormatYAML))
	require.Contains(t, yamlBuf.String(), "id: edge")
	var fromYAML report.Snapshot
	require.NoError(t, yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML))
	require.Equal(t, snap, fromYAML)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := report.ParseFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, report.FormatJSON, f)

	_, err = report.ParseFormat("xml")
	require.ErrorContains(t, err, "unknown output format 'xml'")
}
