package render

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
)

// Render is a pure function turning a section template plus a field-value map
// into an HTML fragment. The passes run in a fixed order so loop-body tokens
// are not consumed early by the scalar pass:
//
//  1. {{#if key}}...{{/if}}     body kept iff data[key] is truthy
//  2. {{#each key}}...{{/each}} body instantiated per sequence element
//  3. {{key}}                   escaped scalar substitution
//
// The contract is render-once from raw field data; rendering already-rendered
// HTML double-escapes. Nested {{#if}} blocks are not supported: the first
// {{/if}} closes the block.
func Render(template string, data map[string]interface{}) string {
	out := renderConditionals(template, data)
	out = renderLoops(out, data)
	return renderScalars(out, data)
}

var (
	ifBlockRe   = regexp.MustCompile(`(?s)\{\{#if\s+(\w+)\s*\}\}(.*?)\{\{/if\}\}`)
	eachBlockRe = regexp.MustCompile(`(?s)\{\{#each\s+(\w+)\s*\}\}(.*?)\{\{/each\}\}`)
	thisFieldRe = regexp.MustCompile(`\{\{this\.(\w+)\}\}`)
	scalarRe    = regexp.MustCompile(`\{\{\s*(\w+)\s*\}\}`)
)

func renderConditionals(template string, data map[string]interface{}) string {
	return ifBlockRe.ReplaceAllStringFunc(template, func(block string) string {
		m := ifBlockRe.FindStringSubmatch(block)
		if truthy(data[m[1]]) {
			return m[2]
		}
		return ""
	})
}

func renderLoops(template string, data map[string]interface{}) string {
	return eachBlockRe.ReplaceAllStringFunc(template, func(block string) string {
		m := eachBlockRe.FindStringSubmatch(block)
		items, ok := sequence(data[m[1]])
		if !ok {
			return ""
		}

		var b strings.Builder
		for _, item := range items {
			b.WriteString(instantiate(m[2], item))
		}
		return b.String()
	})
}

// instantiate expands one loop-body copy for a single element: {{this.field}}
// for keyed maps, {{this}} for scalars.
func instantiate(body string, item interface{}) string {
	if fields, ok := item.(map[string]interface{}); ok {
		return thisFieldRe.ReplaceAllStringFunc(body, func(token string) string {
			m := thisFieldRe.FindStringSubmatch(token)
			return escapeValue(fields[m[1]])
		})
	}
	return strings.ReplaceAll(body, "{{this}}", escapeValue(item))
}

func renderScalars(template string, data map[string]interface{}) string {
	return scalarRe.ReplaceAllStringFunc(template, func(token string) string {
		m := scalarRe.FindStringSubmatch(token)
		return escapeValue(data[m[1]])
	})
}

// truthy follows the template-language notion: nil, empty string and false
// are falsy, everything else (zero numbers included) is truthy.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	default:
		return true
	}
}

// sequence returns the elements of v when it is an ordered sequence. Strings
// and maps are not sequences here even though reflect can range over them.
func sequence(v interface{}) ([]interface{}, bool) {
	if v == nil {
		return nil, false
	}
	if items, ok := v.([]interface{}); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	items := make([]interface{}, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// escapeValue renders a field value for HTML. Strings get their newlines
// converted to <br> after escaping so textarea content keeps its line breaks;
// other values are escaped as their plain string form.
func escapeValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		escaped := htmlEscaper.Replace(t)
		escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
		return strings.ReplaceAll(escaped, "\n", "<br>")
	default:
		return htmlEscaper.Replace(fmt.Sprint(t))
	}
}
