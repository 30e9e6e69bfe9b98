// internal/diag/diag_test.go
package diag

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorFormatting(t *testing.T) {
	d := New(RouteConflict, "pages/about.mtm", 2, "route %q is already registered", "/about")
	assert.Equal(t, `route conflict: route "/about" is already registered (pages/about.mtm:2)`, d.Error())

	d = New(ConditionSyntax, "pages/x.mtm", 0, "bad condition")
	assert.Equal(t, "condition syntax: bad condition (pages/x.mtm)", d.Error())

	d = New(InvalidCompilationMode, "", 0, "no such mode")
	assert.Equal(t, "invalid compilation mode: no such mode", d.Error())
}

func TestSuggestChains(t *testing.T) {
	d := New(ImportResolution, "a.mtm", 0, "cannot resolve").
		Suggest("check the path").
		Suggest("check the extension")
	assert.Equal(t, []string{"check the path", "check the extension"}, d.Suggestions)
}

func TestRenderPlain(t *testing.T) {
	d := New(RouteConflict, "pages/about.mtm", 3, `route "/about" is already registered by pages/info.mtm`).
		Suggest("choose a distinct path for one of the files")

	out := Render(d, false, false)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "error: route conflict", lines[0])
	assert.Equal(t, "  --> pages/about.mtm:3", lines[1])
	assert.Equal(t, `  route "/about" is already registered by pages/info.mtm`, lines[2])
	assert.Equal(t, "  help: choose a distinct path for one of the files", lines[3])

	warn := Render(d, true, false)
	assert.True(t, strings.HasPrefix(warn, "warning: route conflict"))
}

func TestCollectorConcurrentUse(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.AddError(New(RouteConflict, "a.mtm", 0, "dup"))
			c.AddWarning(New(ConditionSyntax, "a.mtm", 0, "odd"))
		}()
	}
	wg.Wait()

	assert.True(t, c.HasErrors())
	assert.Len(t, c.Errors(), 50)
	assert.Len(t, c.Warnings(), 50)
	assert.Equal(t, "50 error(s), 50 warning(s)", c.Summary())
}
