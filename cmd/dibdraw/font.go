// seehuhn.de/go/dib - a bitmap drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seehuhn.de/go/dib/font"
)

var flagFont string

var glyphHeader = lipgloss.NewStyle().Bold(true)

var measureCmd = &cobra.Command{
	Use:   "measure <text>",
	Short: "Print the width and height of a text in pixels",
	Long: `Prints the size of the bounding box of a text, as drawn with one of
the built-in fonts. Use "\n" in the text for line breaks.

Examples:
  dibdraw measure "Hello"
  dibdraw measure --font small 'two\nlines'`,
	Args: cobra.ExactArgs(1),
	RunE: runMeasure,
}

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Show all glyphs of a built-in font",
	Args:  cobra.NoArgs,
	RunE:  runGlyphs,
}

func init() {
	measureCmd.Flags().StringVar(&flagFont, "font", "medium", "Font name (small or medium)")
	glyphsCmd.Flags().StringVar(&flagFont, "font", "medium", "Font name (small or medium)")
}

func loadFont(name string) (*font.Font, error) {
	src, err := font.ByName(name)
	if err != nil {
		return nil, err
	}
	return font.Load(src, 0)
}

func runMeasure(cmd *cobra.Command, args []string) error {
	f, err := loadFont(flagFont)
	if err != nil {
		return err
	}
	text := strings.ReplaceAll(args[0], `\n`, "\n")
	w, h := f.Measure(text)
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", w, h)
	return nil
}

func runGlyphs(cmd *cobra.Command, args []string) error {
	f, err := loadFont(flagFont)
	if err != nil {
		return err
	}
	return printGlyphs(cmd.OutOrStdout(), f.Table())
}

// printGlyphs walks a font table record by record and draws each glyph
// with '#' for set pixels.
func printGlyphs(w io.Writer, table []byte) error {
	n := 0
	for rec := table; len(rec) > 0 && rec[0] != 0; rec = font.NextGlyph(rec) {
		g, err := font.ParseGlyph(rec)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, glyphHeader.Render(fmt.Sprintf("%q %dx%d", g.Char, g.Width, g.Height)))
		for y := range g.Height {
			row := make([]byte, g.Width)
			for x := range row {
				row[x] = '.'
				if g.At(x, y) {
					row[x] = '#'
				}
			}
			fmt.Fprintf(w, "  %s\n", row)
		}
		n++
	}
	fmt.Fprintf(w, "%d glyphs\n", n)
	return nil
}
