package output

import (
	"io"

	"github.com/df07/go-sppm/pkg/renderer"
	"github.com/go-json-experiment/json"
	"github.com/pkg/errors"
)

// Checkpoint is the persisted state of a render: the combined buffer after
// Iter iterations, stored column-major as Data[x][y] = [r, g, b]
type Checkpoint struct {
	Iter int            `json:"iter"`
	Data [][][3]float64 `json:"data"`
}

// EncodeCheckpoint writes buf and its iteration count as JSON
func EncodeCheckpoint(w io.Writer, iter int, buf *renderer.Buffer) error {
	cp := Checkpoint{Iter: iter, Data: buf.Columns()}
	if err := json.MarshalWrite(w, &cp); err != nil {
		return errors.Wrap(err, "encoding checkpoint")
	}
	return nil
}

// DecodeCheckpoint reads a checkpoint written by EncodeCheckpoint
func DecodeCheckpoint(r io.Reader) (int, *renderer.Buffer, error) {
	var cp Checkpoint
	if err := json.UnmarshalRead(r, &cp); err != nil {
		return 0, nil, errors.Wrap(err, "decoding checkpoint")
	}
	if cp.Iter < 0 {
		return 0, nil, errors.Errorf("checkpoint has negative iteration %d", cp.Iter)
	}

	buf, err := renderer.BufferFromColumns(cp.Data)
	if err != nil {
		return 0, nil, errors.Wrap(err, "checkpoint pixel data")
	}
	return cp.Iter, buf, nil
}
