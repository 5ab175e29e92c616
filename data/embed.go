// Package data embeds reviewed reference data files.
package data

import _ "embed"

// NumwordsGolden is the JSON array of reviewed numwords spellings. Each
// element has name, input, words and signed fields.
//
//go:embed golden/numwords.json
var NumwordsGolden []byte
