package main

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// magicCodingPrefix is the header Erlang source files predating the
// language's UTF-8-by-default switch use to declare a legacy encoding, e.g.
// "%% coding: latin-1".
const magicCodingPrefix = "coding:"

// decodeSource turns raw file bytes into the UTF-8 string the tokenizer
// expects, honoring an explicit -encoding override or, failing that, a
// "%% coding: latin-1" magic comment on one of the first few lines.
func decodeSource(data []byte, override string) (string, error) {
	enc := strings.ToLower(override)
	if enc == "" {
		enc = detectMagicEncoding(data)
	}

	switch enc {
	case "", "utf-8", "utf8":
		return string(data), nil
	case "latin1", "latin-1", "iso-8859-1":
		decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding latin-1 source: %w", err)
		}
		return string(decoded), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q (want utf-8 or latin1)", override)
	}
}

// detectMagicEncoding scans the first few lines for a coding declaration
// comment, the way erl_scan recognizes the same header.
func detectMagicEncoding(data []byte) string {
	lines := bytes.SplitN(data, []byte("\n"), 5)
	if len(lines) == 5 {
		lines = lines[:4] // the fifth element is the rest of the file
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(string(line))
		if !strings.HasPrefix(trimmed, "%") {
			continue
		}
		idx := strings.Index(strings.ToLower(trimmed), magicCodingPrefix)
		if idx == -1 {
			continue
		}
		rest := strings.TrimSpace(trimmed[idx+len(magicCodingPrefix):])
		rest = strings.TrimSuffix(rest, "-*-")
		rest = strings.TrimSpace(rest)
		switch strings.ToLower(rest) {
		case "latin-1", "latin1", "iso-8859-1":
			return "latin1"
		case "utf-8", "utf8":
			return "utf-8"
		}
	}
	return ""
}
