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
	"github.com/spf13/cobra"

	"seehuhn.de/go/dib/scene"
)

var (
	flagOutput string
	flagBPP    int
)

var renderCmd = &cobra.Command{
	Use:   "render <scene.yaml>",
	Short: "Render a scene file to BMP",
	Long: `Reads a YAML scene description, draws it and writes the result as a
BMP file.

Examples:
  dibdraw render scene.yaml -o scene.bmp
  dibdraw render scene.yaml -o scene.bmp --bpp 32`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Render the built-in demo image",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func init() {
	for _, cmd := range []*cobra.Command{renderCmd, demoCmd} {
		cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Output BMP file")
		cmd.Flags().IntVar(&flagBPP, "bpp", 0, "Bits per pixel, 24 or 32 (default: as in the scene)")
		cmd.MarkFlagRequired("output")
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	sc, err := scene.LoadFile(args[0])
	if err != nil {
		return err
	}
	return save(sc, flagOutput)
}

func runDemo(cmd *cobra.Command, args []string) error {
	return save(scene.Demo(), flagOutput)
}

// save renders sc and writes it to the BMP file name.
func save(sc *scene.Scene, name string) error {
	if flagBPP != 0 {
		sc.BPP = flagBPP
	}
	s, err := sc.Render()
	if err != nil {
		return err
	}
	defer s.Release()

	if err := s.Save(name); err != nil {
		return err
	}
	logger.Info("image written", "file", name,
		"width", s.Width(), "height", s.Height(), "bpp", s.BPP())
	return nil
}
