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
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"

	"seehuhn.de/go/dib/scene"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write all built-in scenes as BMP and YAML files",
	Long: `Renders every built-in scene and writes <category>_<name>.bmp
together with the scene description <category>_<name>.yaml into the
given directory, which is created if needed.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	return export(args[0])
}

func export(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	n := 0
	for _, category := range slices.Sorted(maps.Keys(scene.All)) {
		for _, sc := range scene.All[category] {
			base := filepath.Join(dir, category+"_"+sc.Name)

			data, err := sc.Marshal()
			if err != nil {
				return fmt.Errorf("%s/%s: %w", category, sc.Name, err)
			}
			if err := os.WriteFile(base+".yaml", data, 0o644); err != nil {
				return err
			}

			s, err := sc.Render()
			if err != nil {
				return err
			}
			err = s.Save(base + ".bmp")
			s.Release()
			if err != nil {
				return err
			}
			logger.Debug("exported", "scene", category+"/"+sc.Name)
			n++
		}
	}
	logger.Info("export complete", "dir", dir, "scenes", n)
	return nil
}
