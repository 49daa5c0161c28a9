package models

import (
	"path/filepath"
	"strings"
)

// Document is a located README: its text and where it was read from.
// The text is never modified after the document is created.
type Document struct {
	Path string
	Text string
}

// NewDocument builds a Document from raw file bytes. Invalid UTF-8 sequences
// are dropped so that callers always see valid text.
func NewDocument(path string, raw []byte) *Document {
	return &Document{
		Path: path,
		Text: DecodeText(raw),
	}
}

// DecodeText converts raw bytes to a string, dropping invalid UTF-8 bytes.
func DecodeText(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "")
}

// Ext returns the lowercased file extension of the document path.
func (d *Document) Ext() string {
	return strings.ToLower(filepath.Ext(d.Path))
}

// Section is a view into a document between a heading and the next
// level-2 or level-3 heading.
type Section struct {
	Title string
	Level int    // 2 or 3
	Line  int    // 1-based line of the heading
	Start int    // byte offset of the first body character
	End   int    // byte offset one past the last body character
	Body  string // text[Start:End]
}

// CodeBlock is a fenced code block.
type CodeBlock struct {
	Language string
	Body     string
}

// Link is an inline markdown hyperlink.
type Link struct {
	Label       string
	Destination string
}
