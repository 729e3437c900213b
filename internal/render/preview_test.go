package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/peter8zero/specbuilder/internal/extract"
)

func TestFormatCategory(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{name: "plain word", key: "revaluation", want: "Revaluation"},
		{name: "acronym", key: "gmp", want: "GMP"},
		{name: "underscore words", key: "early_retirement", want: "Early Retirement"},
		{name: "mixed acronym and word", key: "cetv basis", want: "CETV Basis"},
		{name: "unknown short word stays titled", key: "tax", want: "Tax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatCategory(tt.key))
		})
	}
}

func TestPreview_Empty(t *testing.T) {
	out := Preview(extract.Table[extract.Option]{}, extract.Table[extract.Capability]{})

	require.Contains(t, out, "Options (0):")
	require.Contains(t, out, "Capabilities (0):")
	require.Equal(t, 2, strings.Count(out, "  (none)"))
}

func TestPreview_OptionsLine(t *testing.T) {
	options := extract.Table[extract.Option]{
		"gmp": {
			{Name: "GMP Eq", CodeClass: "GmpEqualiser"},
			{Name: "Anti-Franking", CodeClass: "AntiFranking"},
		},
	}

	out := Preview(options, extract.Table[extract.Capability]{})
	require.Contains(t, out, "Options (2):")
	require.Contains(t, out, "GMP Eq (GmpEqualiser), Anti-Franking (AntiFranking)")
	require.Contains(t, out, "  GMP  ")
}

func TestPreview_CapabilityGrouping(t *testing.T) {
	capabilities := extract.Table[extract.Capability]{
		"gmp": {
			{Name: "A", ParentOption: &extract.ParentRef{ID: "gmp_eq", Name: "GMP Eq"}},
			{Name: "B", ParentOption: &extract.ParentRef{ID: "gmp_eq", Name: "GMP Eq"}},
			{Name: "Loose"},
		},
	}

	out := Preview(extract.Table[extract.Option]{}, capabilities)
	require.Contains(t, out, "Capabilities (3):")
	require.Contains(t, out, "A, B  -> parent: GMP Eq; Loose  (standalone)")
}
