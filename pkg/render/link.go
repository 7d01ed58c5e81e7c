package render

import "strings"

// LinkResolver maps module references to URLs. Formats with a link
// construct (HTML, Markdown) use it to turn M(foo.bar.baz) into a
// hyperlink; an empty return value means "no link known" and the renderer
// falls back to an unlinked reference.
type LinkResolver interface {
	// ModuleURL returns the URL for a module's documentation page, or ""
	// if none is available.
	ModuleURL(fqcn string) string
}

// NoLinks is a LinkResolver that never resolves anything.
type NoLinks struct{}

// ModuleURL implements LinkResolver.
func (NoLinks) ModuleURL(string) string { return "" }

// Docsite resolves module references against an Ansible documentation site.
// A reference ns.coll.name maps to
// <base>/collections/ns/coll/name_module.html.
type Docsite struct {
	// Base is the site root, for example "https://docs.ansible.com/ansible/latest".
	Base string
}

// ModuleURL implements LinkResolver. References that are not three or more
// dotted parts resolve to "".
func (d Docsite) ModuleURL(fqcn string) string {
	if d.Base == "" {
		return ""
	}
	parts := strings.SplitN(fqcn, ".", 3)
	if len(parts) < 3 {
		return ""
	}
	base := strings.TrimSuffix(d.Base, "/")
	return base + "/collections/" + parts[0] + "/" + parts[1] + "/" +
		strings.ReplaceAll(parts[2], ".", "_") + "_module.html"
}
