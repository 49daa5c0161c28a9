package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/harrison/docguard/internal/models"
)

var md = goldmark.New()

func parse(source []byte) ast.Node {
	return md.Parser().Parse(text.NewReader(source))
}

// CodeBlocks returns every fenced code block in document order. Language is
// the first word of the fence info string, empty when the fence has none.
func CodeBlocks(content string) []models.CodeBlock {
	source := []byte(content)
	var blocks []models.CodeBlock

	ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fenced, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		var body strings.Builder
		lines := fenced.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			body.Write(segment.Value(source))
		}

		blocks = append(blocks, models.CodeBlock{
			Language: string(fenced.Language(source)),
			Body:     body.String(),
		})
		return ast.WalkSkipChildren, nil
	})

	return blocks
}

// Links returns every inline hyperlink in document order.
func Links(content string) []models.Link {
	source := []byte(content)
	var links []models.Link

	ast.Walk(parse(source), func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}

		links = append(links, models.Link{
			Label:       extractText(link, source),
			Destination: string(link.Destination),
		})
		return ast.WalkSkipChildren, nil
	})

	return links
}

// Languages returns the set of lowercased fence languages in content.
func Languages(content string) map[string]bool {
	langs := make(map[string]bool)
	for _, b := range CodeBlocks(content) {
		langs[strings.ToLower(b.Language)] = true
	}
	return langs
}

// InCodeBlock reports whether snippet appears in the body of any fenced block.
func InCodeBlock(content, snippet string) bool {
	for _, b := range CodeBlocks(content) {
		if strings.Contains(b.Body, snippet) {
			return true
		}
	}
	return false
}

// extractText concatenates the text segments below n.
func extractText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
		case *ast.String:
			sb.Write(t.Value)
		default:
			sb.WriteString(extractText(c, source))
		}
	}
	return sb.String()
}
