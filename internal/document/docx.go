package document

import (
	"bytes"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

var (
	docxBreaks = strings.NewReplacer("</w:p>", "\n", "<w:br/>", "\n", "<w:tab/>", "\t")
	docxTags   = regexp.MustCompile(`<[^>]*>`)
)

func extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: read docx: %w", ErrParse, err)
	}
	defer doc.Close()

	// content is the raw document.xml body
	content := docxBreaks.Replace(doc.Editable().GetContent())
	return html.UnescapeString(docxTags.ReplaceAllString(content, "")), nil
}
