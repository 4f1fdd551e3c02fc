package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPix := flatten(on)
	offPix := flatten(off)
	for i, c := range cells {
		px := offPix
		if c != 0 {
			px = onPix
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func flatten(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
