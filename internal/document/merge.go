package document

import (
	"bytes"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	ierr "github.com/quotedesk/quotedesk/internal/errors"
)

// MergePDFBuffers concatenates PDF byte buffers into a single document,
// preserving the given order.
func MergePDFBuffers(buffers [][]byte) ([]byte, error) {
	if len(buffers) == 0 {
		return nil, ierr.NewError("no documents to merge").
			WithHint("At least one rendered document is required").
			Mark(ierr.ErrValidation)
	}
	if len(buffers) == 1 {
		out := make([]byte, len(buffers[0]))
		copy(out, buffers[0])
		return out, nil
	}

	readers := make([]io.ReadSeeker, len(buffers))
	for i, b := range buffers {
		readers[i] = bytes.NewReader(b)
	}

	var out bytes.Buffer
	if err := api.MergeRaw(readers, &out, false, nil); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to merge PDF documents").
			Mark(ierr.ErrInternal)
	}
	return out.Bytes(), nil
}
