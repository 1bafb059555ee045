package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarSubstitution(t *testing.T) {
	assert.Equal(t, "Hello World", Render("Hello {{name}}", map[string]interface{}{"name": "World"}))
	assert.Equal(t, "Hello ", Render("Hello {{name}}", map[string]interface{}{}))
	assert.Equal(t, "Hello ", Render("Hello {{name}}", map[string]interface{}{"name": nil}))
}

func TestScalarEscaping(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;", Render("{{v}}", map[string]interface{}{"v": "<b>"}))
	assert.Equal(t,
		"&amp; &lt; &gt; &quot; &#039;",
		Render("{{v}}", map[string]interface{}{"v": `& < > " '`}))
}

func TestScalarNewlines(t *testing.T) {
	// Multi-line textarea content keeps its line breaks
	assert.Equal(t, "a<br>b", Render("{{v}}", map[string]interface{}{"v": "a\nb"}))
	assert.Equal(t, "a<br>b", Render("{{v}}", map[string]interface{}{"v": "a\r\nb"}))

	// Non-string values get no newline conversion
	assert.Equal(t, "42", Render("{{v}}", map[string]interface{}{"v": 42}))
	assert.Equal(t, "true", Render("{{v}}", map[string]interface{}{"v": true}))
}

func TestConditional(t *testing.T) {
	tmpl := "{{#if x}}A{{/if}}B"

	assert.Equal(t, "AB", Render(tmpl, map[string]interface{}{"x": true}))
	assert.Equal(t, "B", Render(tmpl, map[string]interface{}{"x": false}))
	assert.Equal(t, "B", Render(tmpl, map[string]interface{}{}))
	assert.Equal(t, "B", Render(tmpl, map[string]interface{}{"x": ""}))
	assert.Equal(t, "AB", Render(tmpl, map[string]interface{}{"x": "yes"}))

	// Zero is truthy; only nil, empty string and false are falsy
	assert.Equal(t, "AB", Render(tmpl, map[string]interface{}{"x": 0}))
}

func TestConditionalBodyTokens(t *testing.T) {
	tmpl := "{{#if greet}}Hello {{name}}!{{/if}}"

	assert.Equal(t, "Hello Ada!", Render(tmpl, map[string]interface{}{"greet": true, "name": "Ada"}))
	assert.Equal(t, "", Render(tmpl, map[string]interface{}{"greet": false, "name": "Ada"}))
}

func TestLoopScalars(t *testing.T) {
	tmpl := "{{#each items}}{{this}},{{/each}}"

	assert.Equal(t, "1,2,", Render(tmpl, map[string]interface{}{"items": []interface{}{1, 2}}))
	assert.Equal(t, "a,b,", Render(tmpl, map[string]interface{}{"items": []string{"a", "b"}}))
	assert.Equal(t, "", Render(tmpl, map[string]interface{}{"items": []interface{}{}}))
	assert.Equal(t, "", Render(tmpl, map[string]interface{}{"items": "not-a-list"}))
	assert.Equal(t, "", Render(tmpl, map[string]interface{}{}))
}

func TestLoopMaps(t *testing.T) {
	tmpl := "{{#each members}}<li>{{this.name}} ({{this.role}})</li>{{/each}}"
	data := map[string]interface{}{
		"members": []interface{}{
			map[string]interface{}{"name": "Ada", "role": "CEO"},
			map[string]interface{}{"name": "Bob <dev>", "role": "CTO"},
		},
	}

	assert.Equal(t,
		"<li>Ada (CEO)</li><li>Bob &lt;dev&gt; (CTO)</li>",
		Render(tmpl, data))
}

func TestLoopElementsEscaped(t *testing.T) {
	assert.Equal(t,
		"&lt;i&gt;,",
		Render("{{#each items}}{{this}},{{/each}}", map[string]interface{}{"items": []interface{}{"<i>"}}))
}

func TestPassOrder(t *testing.T) {
	// Loop-body tokens must not be consumed by the scalar pass even when a
	// same-named scalar key exists.
	tmpl := "{{#each items}}{{this}}{{/each}}-{{items}}"
	out := Render(tmpl, map[string]interface{}{"items": []interface{}{"x"}})
	assert.Equal(t, "x-[x]", out)
}

func TestConditionalNotNested(t *testing.T) {
	// Nesting is undefined behavior; the first {{/if}} closes the block.
	// Pinned so the contract does not drift silently.
	tmpl := "{{#if a}}1{{#if b}}2{{/if}}3{{/if}}"
	out := Render(tmpl, map[string]interface{}{"a": true, "b": true})
	assert.Equal(t, "1{{#if b}}23{{/if}}", out)
}

func TestRenderOnceContract(t *testing.T) {
	data := map[string]interface{}{"v": "<b>"}
	once := Render("{{v}}", data)
	require.Equal(t, "&lt;b&gt;", once)

	// Rendering already-rendered output double-escapes; the contract is
	// render exactly once from raw field data.
	assert.Equal(t, "&amp;lt;b&amp;gt;", Render("{{v}}", map[string]interface{}{"v": once}))
}

func TestBuiltinTemplates(t *testing.T) {
	list := List()
	require.NotEmpty(t, list)

	for _, tmpl := range list {
		assert.NotEmpty(t, tmpl.Name)
		assert.NotEmpty(t, tmpl.HTML)
		assert.NotEmpty(t, tmpl.Fields)

		got, ok := Get(tmpl.Name)
		require.True(t, ok)
		assert.Equal(t, tmpl.HTML, got.HTML)
	}

	_, ok := Get("no-such-template")
	assert.False(t, ok)
}

func TestServicesTemplateEndToEnd(t *testing.T) {
	tmpl, ok := Get("services")
	require.True(t, ok)

	out := Render(tmpl.HTML, map[string]interface{}{
		"heading": "What we do",
		"items":   []interface{}{"Design", "Build"},
	})
	assert.Equal(t,
		`<section class="services"><h2>What we do</h2><ul><li>Design</li><li>Build</li></ul></section>`,
		out)
}
