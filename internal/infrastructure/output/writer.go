package output

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"

	"github.com/rios0rios0/submissiontrigger/internal/domain/entities"
)

// Writer wraps the process output with explicit buffering and encoding, so
// neither depends on the ambient environment.
type Writer struct {
	buffering string
	buffer    *bufio.Writer
	encoder   io.WriteCloser
	target    io.Writer
}

// NewWriter wraps w. buffering is one of "none", "line" or "full"; encoding is
// any name x/text's HTML index knows ("utf-8", "latin1", "shift_jis", ...).
// Characters the encoding cannot represent are replaced.
func NewWriter(w io.Writer, buffering, encodingName string) (*Writer, error) {
	it := &Writer{buffering: buffering, target: w}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w: output encoding %q: %w", entities.ErrInvalidSettings, encodingName, err)
	}
	if name, _ := htmlindex.Name(enc); name != "utf-8" {
		it.encoder = transform.NewWriter(w, encoding.ReplaceUnsupported(enc.NewEncoder()))
		it.target = it.encoder
	}

	switch buffering {
	case entities.BufferingNone:
	case entities.BufferingLine, entities.BufferingFull:
		it.buffer = bufio.NewWriter(it.target)
	default:
		return nil, fmt.Errorf("%w: output buffering %q", entities.ErrInvalidSettings, buffering)
	}

	return it, nil
}

// Write implements io.Writer. In line mode, the buffer is flushed whenever p
// contains a newline.
func (it *Writer) Write(p []byte) (int, error) {
	if it.buffer == nil {
		return it.target.Write(p)
	}

	n, err := it.buffer.Write(p)
	if err != nil {
		return n, err
	}
	if it.buffering == entities.BufferingLine && bytes.IndexByte(p, '\n') >= 0 {
		err = it.buffer.Flush()
	}
	return n, err
}

// Close flushes pending output. It does not close the wrapped writer.
func (it *Writer) Close() error {
	if it.buffer != nil {
		if err := it.buffer.Flush(); err != nil {
			return err
		}
	}
	if it.encoder != nil {
		return it.encoder.Close()
	}
	return nil
}
