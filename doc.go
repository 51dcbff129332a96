// Package chatmark renders short, untrusted markdown text, such as chat
// messages or model-written commentary, to HTML that can be inserted into a
// page without further treatment.
//
// Only a small subset of markdown is understood: headings up to level 3,
// paragraphs, block quotes, ordered and unordered lists, fenced code blocks,
// code spans, links, bold, italic and strikethrough. Everything else comes
// out as escaped text.
//
// The input is HTML-escaped before any markdown syntax is recognized, and
// links are only created for http, https and mailto targets, so no input can
// introduce elements, attributes or script URLs of its own.
//
// The simplest way to invoke chatmark is Render:
//
//	html := chatmark.Render("**hello** _world_")
//
// For class hooks, link attributes, heading ids or standalone pages, create a
// renderer with NewHTMLRenderer. A renderer holds no per-call state and can
// be shared between goroutines.
package chatmark
