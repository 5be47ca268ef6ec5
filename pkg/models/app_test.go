package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCompatibilityStatus(t *testing.T) {
	tests := []struct {
		input string
		want  CompatibilityStatus
	}{
		{"safe", CompatibilitySafe},
		{" SAFE ", CompatibilitySafe},
		{"jit_required", CompatibilityJITRequired},
		{"trollstore_only", CompatibilityTrollStoreOnly},
		{"jailbreak_only", CompatibilityJailbreakOnly},
		{"", CompatibilityUnknown},
		{"something else", CompatibilityUnknown},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, ParseCompatibilityStatus(tt.input), "input %q", tt.input)
	}
}

func TestDedupKey(t *testing.T) {
	tests := []struct {
		name string
		app  AppItem
		want string
	}{
		{"dotted bundle id", AppItem{BundleIdentifier: "com.Example.App", Name: "X"}, "bid:com.example.app"},
		{"bundle id trimmed", AppItem{BundleIdentifier: "  com.example.app  "}, "bid:com.example.app"},
		{"dotless bundle id falls to name", AppItem{BundleIdentifier: "nodot", Name: "Widget"}, "name:widget"},
		{"name only", AppItem{Name: "  My App "}, "name:my app"},
		{"id fallback", AppItem{ID: "abc-123"}, "id:abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.app.DedupKey())
		})
	}
}

func TestNewAppItem(t *testing.T) {
	a := NewAppItem()
	b := NewAppItem()

	require.NotEmpty(t, a.ID)
	require.NotEqual(t, a.ID, b.ID)
	require.Equal(t, DefaultCategory, a.Category)
	require.Equal(t, CompatibilityUnknown, a.CompatibilityStatus)
}

func TestEnsureID(t *testing.T) {
	var a AppItem
	a.EnsureID()
	require.NotEmpty(t, a.ID)

	id := a.ID
	a.EnsureID()
	require.Equal(t, id, a.ID)
}

func TestRepoReplaceAndRemove(t *testing.T) {
	r := Repo{Apps: []AppItem{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}}

	require.True(t, r.ReplaceApp(AppItem{ID: "2", Name: "B2"}))
	require.Equal(t, "B2", r.Apps[1].Name)
	require.False(t, r.ReplaceApp(AppItem{ID: "9"}))

	require.True(t, r.RemoveApp("1"))
	require.Len(t, r.Apps, 1)
	require.False(t, r.RemoveApp("1"))
}
