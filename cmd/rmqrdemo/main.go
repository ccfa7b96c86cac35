/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command rmqrdemo builds an rMQR symbol from command-line text and either
// prints it to the console or renders it to an SVG or PNG file (chosen by
// the -out extension), optionally opening the result in the system's
// default browser.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/pkg/browser"

	"github.com/go-rmqr/rmqrcode"
	"github.com/go-rmqr/rmqrcode/version"
)

func main() {
	var (
		text     = flag.String("text", "HELLO RMQR", "payload to encode")
		eccLevel = flag.String("ecc", "M", "error correction level: M or H")
		strategy = flag.String("strategy", "balanced", "width, height, or balanced")
		scale    = flag.Int("scale", 8, "pixels per module in the PNG output")
		out      = flag.String("out", "", "write an SVG or PNG to this path, chosen by extension (prints to the console if empty)")
		open     = flag.Bool("open", false, "open the rendered file in the default browser (requires -out)")
	)
	flag.Parse()

	ecc, err := parseECC(*eccLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fs, err := parseStrategy(*strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s, err := rmqrcode.Fit(*text, ecc, fs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fit: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "chose version %s\n", s.Version())

	if *out == "" {
		fmt.Println(s.Matrix().String())
		return
	}

	if strings.HasSuffix(strings.ToLower(*out), ".svg") {
		err = writeSVG(*out, s)
	} else {
		err = writePNG(*out, s, *scale)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}

	if *open {
		if err := browser.OpenFile(*out); err != nil {
			fmt.Fprintf(os.Stderr, "open: %v\n", err)
			os.Exit(1)
		}
	}
}

func parseECC(s string) (version.ECC, error) {
	switch s {
	case "M", "m":
		return version.M, nil
	case "H", "h":
		return version.H, nil
	default:
		return 0, fmt.Errorf("unknown ecc level %q, want M or H", s)
	}
}

func parseStrategy(s string) (rmqrcode.FitStrategy, error) {
	switch s {
	case "width":
		return rmqrcode.MinimizeWidth, nil
	case "height":
		return rmqrcode.MinimizeHeight, nil
	case "balanced":
		return rmqrcode.Balanced, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q, want width, height, or balanced", s)
	}
}

// writeSVG renders the symbol as a scalable vector graphic with a 2-module
// quiet zone border, matching Matrix.Grid's own quiet-zone convention.
func writeSVG(path string, s *rmqrcode.Symbol) error {
	svg, err := s.Matrix().ToSVGString(2, true)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}

// writePNG rasterizes the symbol's grid (with quiet zone) at scale pixels
// per module and writes it to path as a 1-bit-per-module black/white image.
func writePNG(path string, s *rmqrcode.Symbol, scale int) error {
	grid := s.Matrix().Grid(true)
	h := len(grid) * scale
	w := len(grid[0]) * scale

	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := range grid {
		for x := range grid[y] {
			c := color.Gray{Y: 255}
			if grid[y][x] == 1 {
				c = color.Gray{Y: 0}
			}
			for dy := 0; dy < scale; dy++ {
				for dx := 0; dx < scale; dx++ {
					img.SetGray(x*scale+dx, y*scale+dy, c)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
