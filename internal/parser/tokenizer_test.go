// internal/parser/tokenizer_test.go
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/adapters"
)

const counterBody = `import Button from "./Button.tsx"
import Card from "./Card.vue"

$count! = signal('count', 0)
$label = 'clicks'
$doubled = $count * 2

$increment = ($event) => {
  $count = $count + 1
}

$reset = () => {
  $count = 0
}

export default function Counter

<template>
  <button click={$increment}>{$count} {$label}</button>
</template>
`

func TestTokenCounts(t *testing.T) {
	tokens := Tokenize(counterBody, nil)

	counts := map[TokenKind]int{}
	for _, tok := range tokens {
		counts[tok.Kind]++
	}

	assert.Equal(t, 2, counts[TokImport])
	assert.Equal(t, 1, counts[TokReactiveVariable])
	assert.Equal(t, 2, counts[TokComputedVariable])
	assert.Equal(t, 2, counts[TokFunction])
	assert.Equal(t, 1, counts[TokTemplate])
	assert.Equal(t, 1, counts[TokComponentName])
}

func TestTokensInSourceOrder(t *testing.T) {
	tokens := Tokenize(counterBody, nil)

	var kinds []TokenKind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []TokenKind{
		TokImport, TokImport,
		TokReactiveVariable, TokComputedVariable, TokComputedVariable,
		TokFunction, TokFunction,
		TokComponentName,
		TokTemplate,
	}, kinds)
}

func TestImportToken(t *testing.T) {
	tokens := Tokenize(`import Button from "./Button.tsx"`, nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, "Button", tokens[0].Name)
	assert.Equal(t, "./Button.tsx", tokens[0].Path)
	assert.Equal(t, adapters.React, tokens[0].Framework)
}

func TestReactiveVariableToken(t *testing.T) {
	tokens := Tokenize("$count! = signal('count', 0)", nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokReactiveVariable, tokens[0].Kind)
	assert.Equal(t, "count", tokens[0].Name)
	assert.Equal(t, "signal('count', 0)", tokens[0].Value)
}

func TestComputedRequiresNoArrow(t *testing.T) {
	// A one-line arrow function matches neither the computed rule (its
	// initializer contains "=>") nor the function rule (no opening brace
	// at end of line), so it is silently skipped.
	tokens := Tokenize("$f = (x) => x * 2", nil)
	assert.Empty(t, tokens)
}

func TestFunctionBodyVerbatim(t *testing.T) {
	body := "$greet = (name) => {\n" +
		"  const msg = 'hi ' + name\n" +
		"  console.log(msg)\n" +
		"}\n"
	tokens := Tokenize(body, nil)
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, TokFunction, tok.Kind)
	assert.Equal(t, "greet", tok.Name)
	assert.Equal(t, "name", tok.Params)
	assert.Equal(t, "  const msg = 'hi ' + name\n  console.log(msg)", tok.Value)
}

func TestOneLineFunction(t *testing.T) {
	tokens := Tokenize("$increment = () => { $count = $count + 1 }", nil)
	require.Len(t, tokens, 1)
	tok := tokens[0]
	assert.Equal(t, TokFunction, tok.Kind)
	assert.Equal(t, "increment", tok.Name)
	assert.Equal(t, "", tok.Params)
	assert.Equal(t, "$count = $count + 1", tok.Value)
}

func TestFunctionCloseBraceMustBeAlone(t *testing.T) {
	// An indented closing brace belongs to the body; only a bare "}" line
	// ends the function.
	body := "$f = () => {\n" +
		"  if (x) {\n" +
		"    y()\n" +
		"  }\n" +
		"}\n"
	tokens := Tokenize(body, nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, "  if (x) {\n    y()\n  }", tokens[0].Value)
}

func TestTemplateContentVerbatim(t *testing.T) {
	body := "<template>\n  <h1>Hello</h1>\n  <p>{$x}</p>\n</template>\n"
	tokens := Tokenize(body, nil)
	require.Len(t, tokens, 1)
	assert.Equal(t, TokTemplate, tokens[0].Kind)
	assert.Equal(t, "  <h1>Hello</h1>\n  <p>{$x}</p>", tokens[0].Value)
}

func TestCommentsAndBlanksSkipped(t *testing.T) {
	tokens := Tokenize("// a comment\n\n   \n// another\n", nil)
	assert.Empty(t, tokens)
}

func TestUnmatchedLinesSkippedSilently(t *testing.T) {
	tokens := Tokenize("this is not anything\n<div>stray markup</div>\n", nil)
	assert.Empty(t, tokens)
}

func TestCustomDetectorInjected(t *testing.T) {
	detect := func(path string) adapters.Framework { return adapters.Svelte }
	tokens := Tokenize(`import X from "@/X"`, detect)
	require.Len(t, tokens, 1)
	assert.Equal(t, adapters.Svelte, tokens[0].Framework)
}
