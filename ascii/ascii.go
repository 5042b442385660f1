package ascii

// IndexMask returns the index of the first byte in b with any bit of mask
// set, or -1 if there is none. With mask 0x80 this locates the first
// non-ASCII byte, which is how the utf8 package decides where its decoder
// has to take over.
func IndexMask(b []byte, mask byte) int {
	return indexMaskGo(b, mask)
}

// IndexMaskString is IndexMask for strings.
func IndexMaskString(s string, mask byte) int {
	return indexMaskGo(s, mask)
}
