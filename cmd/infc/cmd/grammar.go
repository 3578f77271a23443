package cmd

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Language is the concrete-syntax grammar `infc check` parses source text
// with. The semantic core itself consumes a CST node interface only and
// ships no grammar of its own; a production build links a generated
// tree-sitter grammar for the source language in here (e.g. from an
// init() in a build-tagged file). Left nil, the check command reports a
// configuration error rather than silently doing nothing.
var Language *sitter.Language
