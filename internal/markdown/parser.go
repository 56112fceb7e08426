package markdown

import (
	"bufio"
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// FrontMatter is the optional header of an imported journal entry.
type FrontMatter struct {
	Title   string   `yaml:"title" toml:"title"`
	Mood    string   `yaml:"mood" toml:"mood"`
	Tags    []string `yaml:"tags" toml:"tags"`
	Date    string   `yaml:"date" toml:"date"`
	Private bool     `yaml:"private" toml:"private"`
}

// Document is a markdown file split into front matter and body.
type Document struct {
	Meta FrontMatter
	Body string
}

type Parser struct {
	md goldmark.Markdown
}

func NewParser() *Parser {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Typographer,
			&frontmatter.Extender{},
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			goldmarkhtml.WithHardWraps(),
			goldmarkhtml.WithXHTML(),
		),
	)

	return &Parser{
		md: md,
	}
}

// Render converts journal content to HTML. Raw HTML in the source is omitted.
func (p *Parser) Render(content string) (string, error) {
	var buf bytes.Buffer
	err := p.md.Convert([]byte(content), &buf)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ParseDocument reads the front matter of source and returns it along with the
// markdown body that follows it.
func (p *Parser) ParseDocument(source []byte) (*Document, error) {
	context := parser.NewContext()
	p.md.Parser().Parse(text.NewReader(source), parser.WithContext(context))

	doc := &Document{Body: string(source)}

	data := frontmatter.Get(context)
	if data == nil {
		return doc, nil
	}
	if err := data.Decode(&doc.Meta); err != nil {
		return nil, fmt.Errorf("decode front matter: %w", err)
	}
	doc.Body = string(stripFrontMatter(source))

	return doc, nil
}

// stripFrontMatter drops everything up to and including the closing delimiter
// line that matches the opening one.
func stripFrontMatter(source []byte) []byte {
	scanner := bufio.NewScanner(bytes.NewReader(source))
	scanner.Buffer(make([]byte, 0, 64*1024), len(source)+1)

	offset := 0
	var delim []byte
	for scanner.Scan() {
		line := scanner.Bytes()
		offset += len(line) + 1
		trimmed := bytes.TrimSpace(line)
		if delim == nil {
			delim = append([]byte(nil), trimmed...)
			continue
		}
		if bytes.Equal(trimmed, delim) {
			if offset > len(source) {
				return nil
			}
			return source[offset:]
		}
	}
	return source
}
