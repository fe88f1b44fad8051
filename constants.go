package json5pp

const (
	// defaultBufferSize is the buffer size of the cursor and the output
	// writer. Inputs smaller than this are read in a single call.
	defaultBufferSize = 2048
)
