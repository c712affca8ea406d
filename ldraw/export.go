// Package ldraw serializes builds to the line-oriented LDraw model format
// consumed by external viewers. The field layout of part lines is a
// compatibility contract and must not change.
package ldraw

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/Maxwell1111/Lego-Interligence/model"
)

// PartLine serializes one placed part as an LDraw type-1 line:
// shape-type marker, color code, position in LDU, the flattened 3x3
// rotation matrix in row-major order, and the catalog file reference.
func PartLine(part *model.PlacedPart) string {
	x, y, z := part.Position.ToLDU()
	m := part.Rotation.Matrix()

	var b strings.Builder
	fmt.Fprintf(&b, "1 %d %.4f %.4f %.4f", part.Color, x, y, z)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			fmt.Fprintf(&b, " %.6f", m.At(row, col))
		}
	}
	fmt.Fprintf(&b, " %s.dat", part.PartID)

	return b.String()
}

// Export serializes a whole build as an LDraw document.
func Export(build *model.BuildState) string {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "0 %s\n", build.Name)
	fmt.Fprintf(&buf, "0 Name: %s.ldr\n", build.Name)
	buf.WriteString("0 Author: LEGO Architect\n")
	buf.WriteString("0 !LDRAW_ORG Unofficial_Model\n")
	buf.WriteString("\n")

	for _, part := range build.Parts {
		buf.WriteString(PartLine(part))
		buf.WriteString("\n")
	}

	buf.WriteString("\n0\n")

	return buf.String()
}

// Filename derives a download filename from the build name.
func Filename(build *model.BuildState) string {
	return strings.ReplaceAll(build.Name, " ", "_") + ".ldr"
}
