package route

import (
	"testing"

	"github.com/corewire/gonzo-router/compiler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CompilesMatcherImmediately(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users/{id}", HandlerString("UserController@show"))
	require.NoError(t, err)
	assert.True(t, rt.Matcher.Match("/users/42").Matched)
}

func TestNew_InvalidTemplateIsError(t *testing.T) {
	_, err := New([]string{"GET"}, "/users/{id}/{id}", HandlerString("UserController@show"))
	assert.Error(t, err)
}

func TestWhere_RecompilesMatcher(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users/{id}", HandlerString("UserController@show"))
	require.NoError(t, err)

	rt.Where("id", `\d+`)
	assert.True(t, rt.Matcher.Match("/users/42").Matched)
	assert.False(t, rt.Matcher.Match("/users/abc").Matched)
}

func TestWhere_RequiredOverridesTemplateMarker(t *testing.T) {
	rt, err := New([]string{"GET"}, "/search/{?q}", HandlerString("SearchController@run"))
	require.NoError(t, err)

	rt.Where("q", `\w+`, true)
	assert.False(t, rt.Matcher.Match("/search").Matched)
	assert.True(t, rt.Matcher.Match("/search/x").Matched)
}

func TestWhere_InvalidPatternPanics(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users/{id}", HandlerString("UserController@show"))
	require.NoError(t, err)

	assert.Panics(t, func() {
		rt.Where("id", `(`)
	})
}

func TestAllowsMethod_HeadImpliedByGet(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users", HandlerString("UserController@index"))
	require.NoError(t, err)

	assert.True(t, rt.AllowsMethod("GET"))
	assert.True(t, rt.AllowsMethod("HEAD"))
	assert.False(t, rt.AllowsMethod("POST"))
}

func TestAllowedMethods_IncludesHeadButNotOptionsUnlessDeclared(t *testing.T) {
	rt, err := New([]string{"GET", "POST"}, "/users", HandlerString("UserController@index"))
	require.NoError(t, err)

	assert.Equal(t, []string{"GET", "HEAD", "POST"}, rt.AllowedMethods())
}

func TestAllowedMethods_IncludesOptionsWhenDeclaredExplicitly(t *testing.T) {
	rt, err := New([]string{"OPTIONS"}, "/users", HandlerString("UserController@index"))
	require.NoError(t, err)

	assert.Equal(t, []string{"OPTIONS"}, rt.AllowedMethods())
}

func TestSetConstraints_DoesNotOverrideExisting(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users/{id}", HandlerString("UserController@show"))
	require.NoError(t, err)
	rt.Where("id", `\d+`)

	rt.SetConstraints(map[string]compiler.Constraint{
		"id": {Pattern: `[a-z]+`},
	})

	// The route-level constraint (digits) wins over the folded group constraint.
	assert.True(t, rt.Matcher.Match("/users/42").Matched)
	assert.False(t, rt.Matcher.Match("/users/abc").Matched)
}

func TestDescribe_ReportsParamCount(t *testing.T) {
	rt, err := New([]string{"GET"}, "/users/{id}/posts/{?slug}", HandlerString("PostController@show"))
	require.NoError(t, err)

	info := rt.Describe()
	assert.Equal(t, 2, info.ParamCount)
	assert.Equal(t, "/users/{id}/posts/{?slug}", info.URI)
}
