package pkg

import (
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter writes every payload to all of its writers, e.g. stdout and
// a rotated log file.
type CombinedWriter struct {
	writers []io.Writer
}

func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	return &CombinedWriter{
		writers: writers,
	}
}

// Write tries every writer even if one fails. The errors are combined.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var err error
	for _, w := range cw.writers {
		if n, wErr := w.Write(p); wErr != nil {
			err = multierr.Append(err, wErr)
		} else if n != len(p) {
			err = multierr.Append(err, io.ErrShortWrite)
		}
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}
