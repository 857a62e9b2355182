// Package htmldoc reads calibration documents out of HTML pages, such as a
// saved puzzle description whose example inputs sit in <pre><code> blocks.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Reader provides access to HTML page content.
type Reader struct {
	doc      *html.Node
	title    string
	metadata map[string]string
	blocks   []CodeBlock
}

// Open opens an HTML file for reading.
func Open(filename string) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	reader := &Reader{
		doc:      doc,
		metadata: make(map[string]string),
	}

	reader.extractHead(doc)
	reader.collectBlocks(doc, false)

	return reader, nil
}

// Close releases resources associated with the Reader.
func (r *Reader) Close() error {
	// Nothing to close for HTML (no file handles kept)
	return nil
}

// Title returns the page title.
func (r *Reader) Title() string {
	return r.title
}

// Metadata returns the page's <meta name=... content=...> pairs.
func (r *Reader) Metadata() map[string]string {
	out := make(map[string]string, len(r.metadata))
	for k, v := range r.metadata {
		out[k] = v
	}
	return out
}

// CodeBlocks returns every code block on the page in document order.
func (r *Reader) CodeBlocks() []CodeBlock {
	return append([]CodeBlock(nil), r.blocks...)
}

// Examples returns the code blocks inside <article> elements. If the page has
// no articles, all code blocks are returned.
func (r *Reader) Examples() []CodeBlock {
	var out []CodeBlock
	for _, b := range r.blocks {
		if b.InArticle {
			out = append(out, b)
		}
	}
	if len(out) == 0 {
		return r.CodeBlocks()
	}
	return out
}

// Block returns the code block at index i.
func (r *Reader) Block(i int) (CodeBlock, error) {
	if i < 0 || i >= len(r.blocks) {
		return CodeBlock{}, fmt.Errorf("code block %d out of range (page has %d)", i, len(r.blocks))
	}
	return r.blocks[i], nil
}

// Text returns the visible text of the page body. Block elements end lines.
func (r *Reader) Text() string {
	body := findElement(r.doc, "body")
	if body == nil {
		body = r.doc
	}
	var sb strings.Builder
	writeText(body, &sb, true)

	var lines []string
	for _, l := range strings.Split(sb.String(), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	return strings.Join(lines, "\n")
}

// extractHead extracts title and meta tags from the head element.
func (r *Reader) extractHead(n *html.Node) {
	if n.Type == html.ElementNode && n.Data == "head" {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "title":
				r.title = strings.TrimSpace(rawText(c))
			case "meta":
				name, content := getAttr(c, "name"), getAttr(c, "content")
				if name == "" {
					name = getAttr(c, "property")
				}
				if name != "" && content != "" {
					r.metadata[name] = content
				}
			}
		}
		return
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.extractHead(c)
	}
}

// collectBlocks walks the tree recording each <pre> as one code block.
// Nested <code> inside <pre> is part of the same block.
func (r *Reader) collectBlocks(n *html.Node, inArticle bool) {
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		switch n.Data {
		case "article":
			inArticle = true
		case "pre":
			r.blocks = append(r.blocks, CodeBlock{
				Index:     len(r.blocks),
				Text:      rawText(n),
				InArticle: inArticle,
			})
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.collectBlocks(c, inArticle)
	}
}

func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed":
		return true
	}
	return false
}

func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// rawText concatenates text nodes under n without adding separators, so
// preformatted line breaks survive unchanged.
func rawText(n *html.Node) string {
	var sb strings.Builder
	writeText(n, &sb, false)
	return sb.String()
}

func writeText(n *html.Node, sb *strings.Builder, breakBlocks bool) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		if shouldSkipElement(n.Data) {
			return
		}
		if n.Data == "br" {
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(c, sb, breakBlocks)
	}
	if breakBlocks && n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6", "tr", "pre", "article":
			sb.WriteString("\n")
		}
	}
}
