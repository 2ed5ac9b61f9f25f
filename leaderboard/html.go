package leaderboard

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func withClass(n *html.Node, class string) *html.Node {
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	return n
}

// buildDocument lays the board out as a standalone page. Text nodes are
// escaped by html.Render, so team names are safe to embed.
func buildDocument(b Board) *html.Node {
	headRow := element(atom.Tr)
	for _, h := range b.Header() {
		headRow.AppendChild(element(atom.Th, text(h)))
	}

	body := element(atom.Tbody)
	for _, row := range b.Rows() {
		tr := element(atom.Tr)
		for _, cell := range row {
			tr.AppendChild(element(atom.Td, text(cell)))
		}
		body.AppendChild(tr)
	}

	page := element(atom.Body, element(atom.H1, text("Tournament Leaderboard")))
	if b.Event != "" {
		page.AppendChild(element(atom.P, text("For Event: "+b.Event)))
	}
	page.AppendChild(withClass(element(atom.Table, element(atom.Thead, headRow), body), "leaderboard"))

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html,
		element(atom.Head, element(atom.Title, text("Tournament Leaderboard"))),
		page,
	))
	return doc
}

func WriteHTML(w io.Writer, b Board) error {
	if err := html.Render(w, buildDocument(b)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
