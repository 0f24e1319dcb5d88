package docgen

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTemplate(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	ct, err := zw.Create("[Content_Types].xml")
	require.NoError(t, err)
	_, err = ct.Write([]byte(`<?xml version="1.0"?><Types/>`))
	require.NoError(t, err)

	doc, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = doc.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func renderedDocument(t *testing.T, template []byte, data Data) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, Render(template, data, &out))

	zr, err := zip.NewReader(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		require.NoError(t, err)
		defer rc.Close()
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		return string(content)
	}
	t.Fatal("rendered docx has no word/document.xml")
	return ""
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>Ref: {{refNumber}} for {{client.name}}</w:t>`)

	got := renderedDocument(t, tpl, Data{
		"refNumber": "CBLS/2508/007",
		"client":    Data{"name": "Acme Labs"},
	})

	assert.Equal(t, `<w:t>Ref: CBLS/2508/007 for Acme Labs</w:t>`, got)
}

func TestRenderUnknownKeyIsEmpty(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>[{{missing}}][{{client.missing}}]</w:t>`)

	got := renderedDocument(t, tpl, Data{"client": Data{}})

	assert.Equal(t, `<w:t>[][]</w:t>`, got)
}

func TestRenderRepairsSplitRuns(t *testing.T) {
	// Word splits placeholders across runs when edits leave revision
	// boundaries inside them.
	tpl := buildTemplate(t,
		`<w:r><w:t>{{ref</w:t></w:r><w:r><w:t>Number}}</w:t></w:r>`)

	got := renderedDocument(t, tpl, Data{"refNumber": "CLS/2508/001"})

	assert.Contains(t, got, "CLS/2508/001")
	assert.NotContains(t, got, "{{")
}

func TestRenderEscapesXML(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>{{name}}</w:t>`)

	got := renderedDocument(t, tpl, Data{"name": "A & B <Pvt>"})

	assert.Equal(t, `<w:t>A &amp; B &lt;Pvt&gt;</w:t>`, got)
}

func TestRenderExpandsItemRows(t *testing.T) {
	tpl := buildTemplate(t, `<w:tbl>`+
		`<w:tr><w:tc><w:t>{{#items}}{{s_no}}. {{description}}{{/items}}</w:t></w:tc></w:tr>`+
		`</w:tbl>`)

	got := renderedDocument(t, tpl, Data{
		"items": []Data{
			{"s_no": "1", "description": "Acetone"},
			{"s_no": "2", "description": "Toluene"},
		},
	})

	assert.Contains(t, got, "1. Acetone")
	assert.Contains(t, got, "2. Toluene")
	assert.Equal(t, 2, bytes.Count([]byte(got), []byte("<w:tr>")))
}

func TestRenderEmptyItemsRemovesRow(t *testing.T) {
	tpl := buildTemplate(t, `<w:tbl>`+
		`<w:tr><w:tc><w:t>{{#items}}{{description}}{{/items}}</w:t></w:tc></w:tr>`+
		`</w:tbl>`)

	got := renderedDocument(t, tpl, Data{"items": []Data{}})

	assert.NotContains(t, got, "<w:tr>")
}

func TestRenderLeavesOtherPartsUntouched(t *testing.T) {
	tpl := buildTemplate(t, `<w:t>{{name}}</w:t>`)
	var out bytes.Buffer
	require.NoError(t, Render(tpl, Data{"name": "x"}, &out))

	zr, err := zip.NewReader(bytes.NewReader(out.Bytes()), int64(out.Len()))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "[Content_Types].xml")
}

func TestFormatINR(t *testing.T) {
	assert.Equal(t, "12,34,567.50", FormatINR(1234567.5))
	assert.Equal(t, "1,000.00", FormatINR(1000))
	assert.Equal(t, "0.00", FormatINR(0))
	assert.Equal(t, "99.99", FormatINR(99.99))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.August, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "7 August 2025", FormatDate(d))
}

func TestExportFilename(t *testing.T) {
	at := time.UnixMilli(1722950400123)
	assert.Equal(t, "Test_Quote_1722950400123.docx", ExportFilename(at))
}
