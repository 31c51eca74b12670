// Package bmp serializes a field to the classic uncompressed 24-bit
// Windows bitmap format: a 14-byte file header, a 40-byte info header,
// then pixel rows padded to 4-byte boundaries with channels stored as
// B,G,R. Rows are written in field storage order (bottom of the canvas
// first), which is exactly the bottom-up row order the format expects.
package bmp

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"yatg/field"
)

const headerSize = 54

type fileHeader struct {
	Type     [2]byte
	Size     uint32
	Reserved uint32
	OffBits  uint32
}

type infoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

// Stride returns the padded byte length of one pixel row.
func Stride(width int) int {
	return (3 * (width + 1) / 4) * 4
}

// Encode writes the field to w in BMP layout.
func Encode(w io.Writer, f *field.Field) error {
	var (
		width  = f.Width()
		height = f.Height()
		stride = Stride(width)
	)

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(headerSize + stride*height),
		OffBits: headerSize,
	}
	ih := infoHeader{
		Size:        40,
		Width:       int32(width),
		Height:      int32(height),
		Planes:      1,
		BitCount:    24,
		Compression: 0,
		SizeImage:   uint32(stride * height),
	}

	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, fh); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, ih); err != nil {
		return err
	}

	line := make([]byte, stride)
	for i := 0; i < height; i++ {
		row := f.Row(i)
		for j, c := range row {
			line[3*j+0] = c.B
			line[3*j+1] = c.G
			line[3*j+2] = c.R
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save encodes the field into the named file.
func Save(path string, f *field.Field) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not write to file %s: %w", path, err)
	}
	if err := Encode(file, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
