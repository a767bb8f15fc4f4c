package provision

// Frame is one KEY:value line of the wire format
type Frame struct {
	Key   string
	Value string
}

// Bytes returns the frame as sent on the wire, newline included
func (f Frame) Bytes() []byte {
	b := make([]byte, 0, len(f.Key)+len(f.Value)+2)
	b = append(b, f.Key...)
	b = append(b, ':')
	b = append(b, f.Value...)
	return append(b, '\n')
}

// Frames returns the five frames for r in transmission order
func Frames(r Request) []Frame {
	frames := make([]Frame, 0, len(Fields))
	for _, f := range Fields {
		frames = append(frames, Frame{Key: f.Key(), Value: r.Value(f)})
	}
	return frames
}

// Encode returns the complete transmission for r
func Encode(r Request) []byte {
	var out []byte
	for _, f := range Frames(r) {
		out = append(out, f.Bytes()...)
	}
	return out
}
