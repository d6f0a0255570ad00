package signal

// Frames splits data into consecutive non-overlapping frames of size
// samples. The frames alias data. A trailing partial frame is dropped.
func Frames(data []float32, size int) [][]float32 {
	if size <= 0 {
		return nil
	}
	out := make([][]float32, 0, len(data)/size)
	for off := 0; off+size <= len(data); off += size {
		out = append(out, data[off:off+size:off+size])
	}
	return out
}
