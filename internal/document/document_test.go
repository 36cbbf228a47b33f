package document

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPlain(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"text/plain", "text/plain; charset=utf-8", "TEXT/MARKDOWN"} {
		text, err := Extract(kind, []byte("Go developer"))
		require.NoError(t, err, kind)
		assert.Equal(t, "Go developer", text)
	}
}

func TestExtractUnsupported(t *testing.T) {
	t.Parallel()

	for _, kind := range []string{"", "image/png", "application/octet-stream"} {
		_, err := Extract(kind, []byte{0x89, 'P', 'N', 'G'})
		assert.ErrorIs(t, err, ErrUnsupportedType, kind)
	}
}

func TestExtractHTML(t *testing.T) {
	t.Parallel()

	page := `<html><head><title>Careers</title><style>p{color:red}</style></head>
<body><h1>Senior Go Engineer</h1><script>track("view")</script>
<p>Kubernetes &amp; gRPC</p><ul><li>Kafka</li><li>PostgreSQL</li></ul>
<noscript>enable javascript</noscript></body></html>`

	text, err := Extract(TypeHTML, []byte(page))
	require.NoError(t, err)

	assert.Contains(t, text, "Senior Go Engineer")
	assert.Contains(t, text, "Kubernetes & gRPC")
	assert.Contains(t, text, "Kafka")
	assert.Contains(t, text, "PostgreSQL")
	assert.NotContains(t, text, "Careers")
	assert.NotContains(t, text, "track")
	assert.NotContains(t, text, "color")
	assert.NotContains(t, text, "javascript")
}

func TestExtractPDF(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, TypePDF, Detect(data))

	text, err := Extract(TypePDF, data)
	require.NoError(t, err)
	assert.Contains(t, text, "Experienced Python developer with AWS and Docker skills.")
}

func TestExtractMalformedPDF(t *testing.T) {
	t.Parallel()

	_, err := Extract(TypePDF, []byte("%PDF-1.4 this is not really a pdf"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestExtractDocx(t *testing.T) {
	t.Parallel()

	text, err := Extract(TypeDocx, buildDocx(t, "Python &amp; Docker", "Kubernetes"))
	require.NoError(t, err)

	assert.Contains(t, text, "Python & Docker")
	assert.Contains(t, text, "Kubernetes")
	assert.NotContains(t, text, "<w:")
}

func TestExtractMalformedDocx(t *testing.T) {
	t.Parallel()

	_, err := Extract(TypeDocx, []byte("PK not a zip"))
	assert.ErrorIs(t, err, ErrParse)
}

func TestDetect(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TypePlain, Detect([]byte("Experienced Python developer")))
	assert.Equal(t, TypePDF, Detect([]byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")))
	assert.Equal(t, TypeHTML, Detect([]byte("<!DOCTYPE html><html><body>hi</body></html>")))
	assert.Equal(t, TypeDocx, Detect(buildDocx(t, "Go")))
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	plain := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(plain, []byte("Looking for a Go developer"), 0o600))

	text, err := ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, "Looking for a Go developer", text)

	docx := filepath.Join(dir, "resume.docx")
	require.NoError(t, os.WriteFile(docx, buildDocx(t, "Terraform"), 0o600))

	text, err = ReadFile(docx)
	require.NoError(t, err)
	assert.Contains(t, text, "Terraform")

	_, err = ReadFile(filepath.Join(dir, "missing.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "job.txt")
	require.NoError(t, os.WriteFile(file, []byte("from file"), 0o600))

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("  \n"), 0o600))

	cases := []struct {
		name    string
		src     Source
		want    string
		wantErr error
	}{
		{name: "inline", src: Source{Name: "job", Text: "inline text"}, want: "inline text"},
		{name: "file wins", src: Source{Name: "job", Text: "inline text", File: file}, want: "from file"},
		{name: "nothing", src: Source{Name: "job"}, wantErr: ErrEmpty},
		{name: "blank file", src: Source{File: empty}, wantErr: ErrEmpty},
		{name: "blank file allowed", src: Source{File: empty, AllowEmpty: true}, want: "  \n"},
		{name: "blank text allowed", src: Source{Name: "job", AllowEmpty: true}, want: ""},
		{name: "missing file", src: Source{File: filepath.Join(dir, "nope.txt")}, wantErr: os.ErrNotExist},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(tc.src)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// buildDocx assembles a minimal word document with one paragraph per entry.
// Paragraph text must already be xml-escaped.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body bytes.Buffer
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	files := map[string]string{
		"[Content_Types].xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`,
		"_rels/.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml": `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
			body.String() + `</w:body></w:document>`,
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml", "word/_rels/document.xml.rels"} {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(files[name]))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
