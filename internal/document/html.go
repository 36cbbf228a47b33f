package document

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func extractHTML(data []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: parse html: %w", ErrParse, err)
	}

	var sb strings.Builder
	walk(root, func(n *html.Node) {
		switch {
		case isVisibleText(n):
			sb.WriteString(strings.TrimSpace(n.Data))
			sb.WriteByte(' ')
		case isBlock(n):
			sb.WriteByte('\n')
		}
	})

	return strings.TrimSpace(sb.String()), nil
}

func walk(n *html.Node, cb func(*html.Node)) {
	if n == nil {
		return
	}
	cb(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, cb)
	}
}

// isVisibleText reports text nodes a browser would render.
func isVisibleText(n *html.Node) bool {
	if n.Type != html.TextNode || strings.TrimSpace(n.Data) == "" {
		return false
	}
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type != html.ElementNode {
			continue
		}
		switch p.DataAtom {
		case atom.Script, atom.Style, atom.Head, atom.Noscript, atom.Template:
			return false
		}
	}
	return true
}

func isBlock(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch n.DataAtom {
	case atom.P, atom.Div, atom.Br, atom.Li, atom.Tr, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}
