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

// dibdraw draws images described in YAML scene files and writes them as
// BMP files.
//
// Usage:
//
//	dibdraw render <scene.yaml> -o out.bmp   - Render a scene file
//	dibdraw demo -o demo.bmp                 - Render the built-in demo image
//	dibdraw measure [--font small] <text>    - Print the size of a text
//	dibdraw glyphs [--font medium]           - Show the glyphs of a font
//	dibdraw export <dir>                     - Write all built-in scenes
//
// Global flags:
//
//	--debug   - Log diagnostics from the drawing library to stderr
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/dib"
)

var flagDebug bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dibdraw",
	Short: "Draw bitmap images from scene descriptions",
	Long: `dibdraw renders images with a small software rasteriser and saves
them as uncompressed 24 or 32 bit BMP files.

Examples:
  dibdraw demo -o demo.bmp
  dibdraw render scene.yaml -o scene.bmp --bpp 32
  dibdraw measure --font small "Hello, World"
  dibdraw glyphs --font medium
  dibdraw export testdata`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log library diagnostics to stderr")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(measureCmd)
	rootCmd.AddCommand(glyphsCmd)
	rootCmd.AddCommand(exportCmd)
}

// logger reports progress of the command line tool itself.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "dibdraw",
})

func setupLogging() {
	if !flagDebug {
		return
	}
	logger.SetLevel(log.DebugLevel)
	logger.SetReportTimestamp(true)
	dib.SetLogger(slog.New(logger.With("lib", "dib")))
}
