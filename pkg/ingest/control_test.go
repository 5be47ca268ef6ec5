package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseControlFields(t *testing.T) {
	block := "Package: com.example.tool\n" +
		"Version: 1.2.3\n" +
		"Description: a short line\n" +
		" and a continuation\n" +
		"\tand a tabbed continuation\n" +
		"Homepage: https://host.dev/path:with:colons\n" +
		"Broken line without separator\n"

	fields := parseControlFields(block)

	require.Equal(t, "com.example.tool", fields["Package"])
	require.Equal(t, "1.2.3", fields["Version"])
	require.Equal(t, "a short line\nand a continuation\nand a tabbed continuation", fields["Description"])
	// Only the first colon separates key from value.
	require.Equal(t, "https://host.dev/path:with:colons", fields["Homepage"])
	require.NotContains(t, fields, "Broken line without separator")
}

func TestParseControlFieldsEmptyValue(t *testing.T) {
	fields := parseControlFields("Package: pkg\nEmpty:\n")
	require.Equal(t, "", fields["Empty"])
}

func TestParseControlBlocks(t *testing.T) {
	index := "Package: first\nVersion: 1.0\n" +
		"\n" +
		"Package: second\nVersion: 2.0\n" +
		"\n\n" +
		"Package: third\n"

	blocks := parseControlBlocks(index)

	require.Len(t, blocks, 3)
	require.Equal(t, "first", blocks[0]["Package"])
	require.Equal(t, "second", blocks[1]["Package"])
	require.Equal(t, "third", blocks[2]["Package"])
}

func TestParseControlBlocksCRLF(t *testing.T) {
	index := "Package: first\r\nVersion: 1.0\r\n\r\nPackage: second\r\n"

	blocks := parseControlBlocks(index)

	require.Len(t, blocks, 2)
	require.Equal(t, "1.0", blocks[0]["Version"])
}

func TestParseControlBlocksEmptyInput(t *testing.T) {
	require.Empty(t, parseControlBlocks(""))
	require.Empty(t, parseControlBlocks("\n\n\n"))
}
