package htmldoc

// CodeBlock is the text of one <pre> or <pre><code> block.
type CodeBlock struct {
	// Index is the block's position among all code blocks, starting at 0.
	Index int
	// Text is the block's text with markup removed and line breaks kept.
	Text string
	// InArticle reports whether the block sits inside an <article> element.
	// Puzzle pages put their descriptions, and so their example inputs, there.
	InArticle bool
}
