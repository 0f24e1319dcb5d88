// Package docgen renders quotation documents from docx templates. A docx
// file is a zip container. The renderer rewrites the XML parts that carry
// text, substituting {{key}} placeholders and expanding {{#items}} table
// regions, and leaves every other part of the container untouched.
package docgen

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Data is the value tree a template renders against. Placeholder keys use
// dotted paths ("bankDetails.ifscCode"). Values under a list key must be
// []Data for section expansion.
type Data map[string]interface{}

var (
	// A brace pair split across runs: "{" followed by XML tags and "{".
	splitOpenRe  = regexp.MustCompile(`\{(?:<[^>]*>)+\{`)
	splitCloseRe = regexp.MustCompile(`\}(?:<[^>]*>)+\}`)

	// A complete placeholder, possibly with XML tags between the braces.
	placeholderRe = regexp.MustCompile(`\{\{(?:[^{}<]|<[^>]*>)*\}\}`)

	tagRe = regexp.MustCompile(`<[^>]*>`)
)

// Render reads a docx template and writes the rendered document to w.
func Render(template []byte, data Data, w io.Writer) error {
	zr, err := zip.NewReader(bytes.NewReader(template), int64(len(template)))
	if err != nil {
		return fmt.Errorf("opening template: %w", err)
	}

	zw := zip.NewWriter(w)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return fmt.Errorf("reading %s: %w", f.Name, err)
		}

		if isTextPart(f.Name) {
			rendered, err := renderXML(string(content), data)
			if err != nil {
				return fmt.Errorf("rendering %s: %w", f.Name, err)
			}
			content = []byte(rendered)
		}

		hdr := &zip.FileHeader{Name: f.Name, Method: f.Method}
		out, err := zw.CreateHeader(hdr)
		if err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		if _, err := out.Write(content); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}

// isTextPart reports whether a zip entry carries document text.
func isTextPart(name string) bool {
	if name == "word/document.xml" {
		return true
	}
	return strings.HasPrefix(name, "word/header") && strings.HasSuffix(name, ".xml") ||
		strings.HasPrefix(name, "word/footer") && strings.HasSuffix(name, ".xml")
}

func renderXML(xml string, data Data) (string, error) {
	xml = normalize(xml)
	xml, err := expandSections(xml, data)
	if err != nil {
		return "", err
	}
	return substitute(xml, data), nil
}

// normalize repairs placeholders that Word split across runs so that
// each one is a contiguous literal in the XML stream.
func normalize(xml string) string {
	xml = splitOpenRe.ReplaceAllString(xml, "{{")
	xml = splitCloseRe.ReplaceAllString(xml, "}}")
	return placeholderRe.ReplaceAllStringFunc(xml, func(m string) string {
		return tagRe.ReplaceAllString(m, "")
	})
}

// expandSections replaces each {{#key}}...{{/key}} region with one copy
// of the region per entry in the list bound to key. When both markers sit
// inside table rows the whole rows are treated as the repeating unit.
func expandSections(xml string, data Data) (string, error) {
	for {
		open := regexp.MustCompile(`\{\{#([A-Za-z0-9_.]+)\}\}`).FindStringSubmatchIndex(xml)
		if open == nil {
			return xml, nil
		}
		key := xml[open[2]:open[3]]
		closeTag := "{{/" + key + "}}"
		closeAt := strings.Index(xml[open[1]:], closeTag)
		if closeAt < 0 {
			return "", fmt.Errorf("section %q is not closed", key)
		}
		closeStart := open[1] + closeAt
		closeEnd := closeStart + len(closeTag)

		regionStart, regionEnd := open[0], closeEnd
		if rs, ok := rowStart(xml, open[0]); ok {
			if re, ok := rowEnd(xml, closeEnd); ok {
				regionStart, regionEnd = rs, re
			}
		}

		body := xml[regionStart:regionEnd]
		body = strings.Replace(body, xml[open[0]:open[1]], "", 1)
		body = strings.Replace(body, closeTag, "", 1)

		var expanded strings.Builder
		if list, ok := data[key].([]Data); ok {
			for _, item := range list {
				expanded.WriteString(substitute(body, merged(data, item)))
			}
		}
		xml = xml[:regionStart] + expanded.String() + xml[regionEnd:]
	}
}

// rowStart finds the opening <w:tr> of the table row containing pos.
func rowStart(xml string, pos int) (int, bool) {
	i := strings.LastIndex(xml[:pos], "<w:tr")
	if i < 0 {
		return 0, false
	}
	// the nearest row must still be open at pos
	if end := strings.Index(xml[i:pos], "</w:tr>"); end >= 0 {
		return 0, false
	}
	return i, true
}

// rowEnd finds the end of the </w:tr> closing the row containing pos.
func rowEnd(xml string, pos int) (int, bool) {
	i := strings.Index(xml[pos:], "</w:tr>")
	if i < 0 {
		return 0, false
	}
	return pos + i + len("</w:tr>"), true
}

// merged overlays item bindings on the root data for section bodies.
func merged(root, item Data) Data {
	out := make(Data, len(root)+len(item))
	for k, v := range root {
		out[k] = v
	}
	for k, v := range item {
		out[k] = v
	}
	return out
}

// substitute resolves every remaining placeholder. Unknown keys render
// as the empty string.
func substitute(xml string, data Data) string {
	return placeholderRe.ReplaceAllStringFunc(xml, func(m string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(m, "{{"), "}}")
		if strings.HasPrefix(key, "#") || strings.HasPrefix(key, "/") {
			return m
		}
		return escapeXML(lookup(data, key))
	})
}

// lookup resolves a dotted path against the data tree.
func lookup(data Data, path string) string {
	parts := strings.Split(path, ".")
	var cur interface{} = data
	for _, p := range parts {
		m, ok := cur.(Data)
		if !ok {
			if mm, ok2 := cur.(map[string]interface{}); ok2 {
				m = Data(mm)
			} else {
				return ""
			}
		}
		cur, ok = m[p]
		if !ok {
			return ""
		}
	}
	switch v := cur.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func escapeXML(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&apos;",
		"\n", "</w:t><w:br/><w:t>",
	)
	return r.Replace(s)
}
