package ingest

import "strings"

// parseControlFields parses one Debian-control block of "Key: Value" lines.
// Continuation lines (leading whitespace) append to the previous key, which
// is how multi-line Description fields are written.
func parseControlFields(block string) map[string]string {
	fields := make(map[string]string)
	lastKey := ""

	for _, line := range strings.Split(block, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && lastKey != "" {
			fields[lastKey] += "\n" + strings.TrimSpace(line)
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(value)
		lastKey = key
	}

	return fields
}

// parseControlBlocks splits a package index into its blank-line-separated
// blocks and parses each one. Empty blocks are skipped.
func parseControlBlocks(index string) []map[string]string {
	normalized := strings.ReplaceAll(index, "\r\n", "\n")

	var blocks []map[string]string
	for _, chunk := range strings.Split(normalized, "\n\n") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		fields := parseControlFields(chunk)
		if len(fields) > 0 {
			blocks = append(blocks, fields)
		}
	}

	return blocks
}
