package render

import (
	"sort"
)

// Field describes one input of a template's declared-but-unenforced schema.
// Section payloads remain opaque JSON in storage; the schema only drives the
// client form.
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"` // text, textarea, boolean, list
}

// Template is a named HTML fragment with placeholder tokens, paired with a
// field schema.
type Template struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`
	HTML        string  `json:"html"`
}

var builtins = map[string]Template{
	"hero": {
		Name:        "hero",
		Description: "Full-width opening banner with title and tagline",
		Fields: []Field{
			{Key: "title", Label: "Title", Type: "text"},
			{Key: "tagline", Label: "Tagline", Type: "text"},
			{Key: "show_tagline", Label: "Show tagline", Type: "boolean"},
		},
		HTML: `<section class="hero"><h1>{{title}}</h1>{{#if show_tagline}}<p class="tagline">{{tagline}}</p>{{/if}}</section>`,
	},
	"about": {
		Name:        "about",
		Description: "Company introduction with a multi-line body",
		Fields: []Field{
			{Key: "heading", Label: "Heading", Type: "text"},
			{Key: "body", Label: "Body", Type: "textarea"},
		},
		HTML: `<section class="about"><h2>{{heading}}</h2><p>{{body}}</p></section>`,
	},
	"services": {
		Name:        "services",
		Description: "Bullet list of offered services",
		Fields: []Field{
			{Key: "heading", Label: "Heading", Type: "text"},
			{Key: "items", Label: "Services", Type: "list"},
		},
		HTML: `<section class="services"><h2>{{heading}}</h2><ul>{{#each items}}<li>{{this}}</li>{{/each}}</ul></section>`,
	},
	"team": {
		Name:        "team",
		Description: "Grid of team members with name and role",
		Fields: []Field{
			{Key: "heading", Label: "Heading", Type: "text"},
			{Key: "members", Label: "Members", Type: "list"},
		},
		HTML: `<section class="team"><h2>{{heading}}</h2><div class="grid">{{#each members}}<div class="member"><strong>{{this.name}}</strong><span>{{this.role}}</span></div>{{/each}}</div></section>`,
	},
	"contact": {
		Name:        "contact",
		Description: "Contact block fed from company settings",
		Fields: []Field{
			{Key: "company_name", Label: "Company name", Type: "text"},
			{Key: "email", Label: "Email", Type: "text"},
			{Key: "phone", Label: "Phone", Type: "text"},
			{Key: "address", Label: "Address", Type: "textarea"},
		},
		HTML: `<footer class="contact"><strong>{{company_name}}</strong>{{#if email}}<span>{{email}}</span>{{/if}}{{#if phone}}<span>{{phone}}</span>{{/if}}<address>{{address}}</address></footer>`,
	},
}

// List returns the built-in templates sorted by name.
func List() []Template {
	out := make([]Template, 0, len(builtins))
	for _, t := range builtins {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the named template.
func Get(name string) (Template, bool) {
	t, ok := builtins[name]
	return t, ok
}
