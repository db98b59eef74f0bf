package hexd

import (
	"fmt"
	"io"

	"github.com/joshuapare/hexkit/internal/mmfile"
)

// FileSource reads a file through a read-only memory mapping where the
// platform supports it, so dumping a large file does not copy it into the
// heap. Close releases the mapping; the source must not be read after
// Close.
type FileSource struct {
	data    []byte
	off     int
	cleanup func() error
}

// OpenFile opens the file at path as a dump source.
//
//	src, err := hexd.OpenFile("core.bin")
//	if err != nil { ... }
//	defer src.Close()
//	hexd.New(src).Print()
func OpenFile(path string) (*FileSource, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, fmt.Errorf("hexd: open %s: %w", path, err)
	}
	return &FileSource{data: data, cleanup: cleanup}, nil
}

func (f *FileSource) Read(p []byte) (int, error) {
	if f.off >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.off:])
	f.off += n
	return n, nil
}

func (f *FileSource) Skip(n int) (int, error) {
	if rem := len(f.data) - f.off; n > rem {
		n = rem
	}
	f.off += n
	return n, nil
}

func (f *FileSource) Size() int {
	return len(f.data)
}

// Close releases the underlying mapping. It is safe to call more than
// once.
func (f *FileSource) Close() error {
	f.data = nil
	if f.cleanup == nil {
		return nil
	}
	err := f.cleanup()
	f.cleanup = nil
	return err
}
