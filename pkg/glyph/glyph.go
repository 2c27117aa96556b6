// Package glyph defines the symbols the printers use for task and
// calendar rows.
package glyph

import "fmt"

const (
	escape     = "\x1b"
	resetCode  = 0
	boldCode   = 1
	strikeCode = 9
	underlCode = 4
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlCode, in, escape, resetCode)
}

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 4)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "open task",
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "task completed",
	}, Glyph{
		Key:     "o",
		Symbol:  "◌",
		Meaning: "hours studied",
	}, Glyph{
		Key:     ">",
		Symbol:  "▸",
		Meaning: "daily target",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

type Bullet int

const (
	Open Bullet = iota
	Completed
	Hours
	Target
)

func (b Bullet) Glyph() Glyph {
	return DefaultGlyphs()[b]
}

func (b Bullet) String() string {
	return b.Glyph().String()
}
