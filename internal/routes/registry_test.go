// internal/routes/registry_test.go
package routes

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mtm/internal/diag"
)

func TestExactDuplicateConflicts(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/home", "pages/home.mtm"))

	err := r.Register("/home", "pages/other.mtm")
	require.Error(t, err)

	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.RouteConflict, d.Kind)
	assert.Contains(t, d.Message, "pages/home.mtm")
	assert.NotEmpty(t, d.Suggestions)
}

func TestSameFileReRegisterIsIdempotent(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/home", "pages/home.mtm"))
	require.NoError(t, r.Register("/home", "pages/home.mtm"))
	assert.Len(t, r.Entries(), 1)
}

func TestDynamicRoutesWithDistinctLiteralsCoexist(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/user/[id]", "pages/user.mtm"))
	require.NoError(t, r.Register("/admin/[id]", "pages/admin.mtm"))
	assert.Len(t, r.Entries(), 2)
}

func TestDynamicPatternCollision(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/user/[id]", "pages/user.mtm"))

	err := r.Register("/user/[id]", "pages/user2.mtm")
	require.Error(t, err)
	d, ok := err.(*diag.Diagnostic)
	require.True(t, ok)
	assert.Equal(t, diag.DynamicRouteConflict, d.Kind)
	assert.NotEmpty(t, d.Suggestions)

	// Same structure, different segment name: still a collision.
	err = r.Register("/user/[slug]", "pages/user3.mtm")
	require.Error(t, err)
	assert.Equal(t, diag.DynamicRouteConflict, err.(*diag.Diagnostic).Kind)
}

func TestDynamicDetection(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/posts/[year]/[slug]", "pages/post.mtm"))

	entry, ok := r.Lookup("/posts/[year]/[slug]")
	require.True(t, ok)
	assert.True(t, entry.IsDynamic)
	assert.Equal(t, []string{"posts", "[year]", "[slug]"}, entry.Segments)
}

func TestStaticAndDynamicDoNotCrossConflict(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("/user/profile", "pages/profile.mtm"))
	require.NoError(t, r.Register("/user/[id]", "pages/user.mtm"))
}

func TestConcurrentRegistration(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := r.Register(fmt.Sprintf("/page-%d", i), fmt.Sprintf("pages/p%d.mtm", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, r.Entries(), 100)
}

func TestRegistriesAreIndependent(t *testing.T) {
	first := NewRegistry()
	require.NoError(t, first.Register("/home", "a.mtm"))

	second := NewRegistry()
	require.NoError(t, second.Register("/home", "b.mtm"))
}
