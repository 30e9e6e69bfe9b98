// internal/expr/expr_test.go
package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Node {
	t.Helper()
	n, err := Parse(src)
	require.NoError(t, err, "parse %q", src)
	return n
}

func TestEvalComparisons(t *testing.T) {
	env := map[string]interface{}{"count": float64(5), "name": "abc", "done": true}

	cases := []struct {
		src  string
		want bool
	}{
		{"count > 4", true},
		{"count > 5", false},
		{"count >= 5", true},
		{"count < 10", true},
		{"count <= 4", false},
		{"count == 5", true},
		{"count != 5", false},
		{"name == 'abc'", true},
		{"name != 'xyz'", true},
		{"done", true},
		{"!done", false},
		{"done && count > 1", true},
		{"done && count > 9", false},
		{"count > 9 || done", true},
		{"!(count > 9) && done", true},
		{"true", true},
		{"false || count == 5", true},
		{"name < 'b'", true},
	}
	for _, tc := range cases {
		got, err := mustParse(t, tc.src).Eval(env)
		require.NoError(t, err, "eval %q", tc.src)
		assert.Equal(t, tc.want, got, "eval %q", tc.src)
	}
}

func TestUnknownIdentifierRejected(t *testing.T) {
	n := mustParse(t, "missing > 1")
	_, err := n.Eval(map[string]interface{}{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestValidateAgainstDeclaredNames(t *testing.T) {
	n := mustParse(t, "count > 4 && flag")
	assert.NoError(t, n.Validate(map[string]bool{"count": true, "flag": true}))
	assert.Error(t, n.Validate(map[string]bool{"count": true}))
}

func TestIdentsInEncounterOrder(t *testing.T) {
	n := mustParse(t, "a > b && a < c")
	assert.Equal(t, []string{"a", "b", "c"}, n.Idents())
}

func TestDollarSigilStripped(t *testing.T) {
	n := mustParse(t, "$count > 4")
	assert.Equal(t, []string{"count"}, n.Idents())
}

func TestParseErrors(t *testing.T) {
	for _, bad := range []string{
		"count >",
		"(count > 1",
		"count ?? 1",
		"'unterminated",
		"count > 1 extra",
		"",
	} {
		_, err := Parse(bad)
		assert.Error(t, err, "source %q", bad)
	}
}

func TestJSONDeterministic(t *testing.T) {
	a := mustParse(t, "count > 4 && !done")
	b := mustParse(t, "count > 4 && !done")
	assert.Equal(t, a.JSON(), b.JSON())
	assert.Contains(t, a.JSON(), `"op":"bin"`)
}

func TestBooleanLiteralValueSurvivesJSON(t *testing.T) {
	n := mustParse(t, "false")
	// A false literal must keep its value field in the JSON payload.
	assert.Contains(t, n.JSON(), `"value":false`)
}

func TestShortCircuit(t *testing.T) {
	// The right side of && is not evaluated when the left is false, so an
	// unknown identifier there must not raise.
	n := mustParse(t, "done && missing > 1")
	got, err := n.Eval(map[string]interface{}{"done": false})
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestTypeMismatchOrdering(t *testing.T) {
	n := mustParse(t, "count > 'abc'")
	_, err := n.Eval(map[string]interface{}{"count": float64(1)})
	assert.Error(t, err)
}
