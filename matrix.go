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

package rmqrcode

import (
	"fmt"
	"strings"
)

// ModuleColor is the color of one module (cell) of an rMQR matrix.
type ModuleColor int8

const (
	// Undefined is an intermediate sentinel used only during
	// construction; a finished matrix contains none.
	Undefined ModuleColor = iota
	Light
	Dark
)

// Matrix is a dense height x width grid of modules, first index row (y),
// second index column (x), origin top-left.
type Matrix struct {
	width, height int
	cells         [][]ModuleColor
	isFunction    [][]bool
	maskArea      [][]bool
}

func newMatrix(width, height int) *Matrix {
	m := &Matrix{
		width:      width,
		height:     height,
		cells:      make([][]ModuleColor, height),
		isFunction: make([][]bool, height),
		maskArea:   make([][]bool, height),
	}
	for y := 0; y < height; y++ {
		m.cells[y] = make([]ModuleColor, width)
		m.isFunction[y] = make([]bool, width)
		m.maskArea[y] = make([]bool, width)
	}
	return m
}

// Width returns the symbol's width in modules.
func (m *Matrix) Width() int { return m.width }

// Height returns the symbol's height in modules.
func (m *Matrix) Height() int { return m.height }

// At returns the color of the module at (x, y).
func (m *Matrix) At(x, y int) ModuleColor { return m.cells[y][x] }

// setFunction writes a function-pattern module; it is a no-op if the cell was
// already written by an earlier function pattern, matching the matrix
// builder's "only overwrites UNDEFINED cells" construction order.
func (m *Matrix) setFunction(x, y int, c ModuleColor) {
	if m.cells[y][x] != Undefined {
		return
	}
	m.cells[y][x] = c
	m.isFunction[y][x] = true
}

// setData writes a data-bearing module and marks it eligible for masking.
func (m *Matrix) setData(x, y int, c ModuleColor) {
	m.cells[y][x] = c
	m.maskArea[y][x] = true
}

func darkIf(cond bool) ModuleColor {
	if cond {
		return Dark
	}
	return Light
}

// applyMask flips every mask-eligible module for which (y/2 + x/3) is
// even: the single fixed mask rMQR defines. Applying it twice restores
// the pre-mask state.
func (m *Matrix) applyMask() {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if !m.maskArea[y][x] {
				continue
			}
			if (y/2+x/3)%2 == 0 {
				if m.cells[y][x] == Dark {
					m.cells[y][x] = Light
				} else {
					m.cells[y][x] = Dark
				}
			}
		}
	}
}

// undefinedCount counts remaining Undefined cells; zero is the
// postcondition of a completed matrix builder run.
func (m *Matrix) undefinedCount() int {
	n := 0
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == Undefined {
				n++
			}
		}
	}
	return n
}

// Grid returns a 2-D array of 0/1 integers, 1 for Dark. With
// includeQuietZone, a 2-module border of 0s is added on every side.
func (m *Matrix) Grid(includeQuietZone bool) [][]int {
	if !includeQuietZone {
		grid := make([][]int, m.height)
		for y := 0; y < m.height; y++ {
			grid[y] = make([]int, m.width)
			for x := 0; x < m.width; x++ {
				if m.cells[y][x] == Dark {
					grid[y][x] = 1
				}
			}
		}
		return grid
	}

	const border = 2
	grid := make([][]int, m.height+2*border)
	for y := range grid {
		grid[y] = make([]int, m.width+2*border)
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == Dark {
				grid[y+border][x+border] = 1
			}
		}
	}
	return grid
}

// ToSVGString returns a scalable vector graphics (SVG) representation of the
// matrix, border modules of quiet zone on every side.
func (m *Matrix) ToSVGString(border int, includeDocType bool) (string, error) {
	if border < 0 {
		return "", fmt.Errorf("border must be non-negative")
	}

	var sb strings.Builder
	if includeDocType {
		sb.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
		sb.WriteString("<!DOCTYPE svg PUBLIC \"-//W3C//DTD SVG 1.1//EN\" \"http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd\">\n")
	}
	fmt.Fprintf(&sb, "<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %d %d\" stroke=\"none\">\n", m.width+border*2, m.height+border*2)
	sb.WriteString("\t<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>\n")
	sb.WriteString("\t<path d=\"")
	first := true
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] != Dark {
				continue
			}
			if !first {
				sb.WriteString(" ")
			}
			first = false
			fmt.Fprintf(&sb, "M%d,%dh1v1h-1z", x+border, y+border)
		}
	}
	sb.WriteString("\" fill=\"#000000\"/>\n")
	sb.WriteString("</svg>\n")

	return sb.String(), nil
}

// String renders the matrix as a block-character grid for debugging.
func (m *Matrix) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.cells[y][x] == Dark {
				sb.WriteString("▓")
			} else {
				sb.WriteString("░")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
