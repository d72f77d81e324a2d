package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// maxPPMLineLength is the longest line some PPM readers accept
const maxPPMLineLength = 70

// WritePPM writes c as a plain (P3) PPM image. Every image row starts on a
// new line and no line is longer than 70 characters.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	line := make([]byte, 0, maxPPMLineLength)
	for y := 0; y < c.Height; y++ {
		line = line[:0]
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, v := range [3]float64{p.R, p.G, p.B} {
				token := strconv.Itoa(int(toByte(v)))
				if len(line) > 0 && len(line)+1+len(token) > maxPPMLineLength {
					line = append(line, '\n')
					if _, err := bw.Write(line); err != nil {
						return err
					}
					line = line[:0]
				}
				if len(line) > 0 {
					line = append(line, ' ')
				}
				line = append(line, token...)
			}
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
