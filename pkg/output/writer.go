package output

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-sppm/pkg/log"
	"github.com/df07/go-sppm/pkg/renderer"
	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// ImageKey is the key of the PNG saved after iter iterations
func ImageKey(iter int) string {
	return fmt.Sprintf("output.%d.png", iter)
}

// CheckpointKey is the key of the checkpoint saved after iter iterations
func CheckpointKey(iter int) string {
	return fmt.Sprintf("checkpoint.%d.json", iter)
}

// OpenBucket opens location as a blob bucket. A location with a URL scheme
// (file://, mem://, gs://) is passed to gocloud as is; anything else is a
// local directory, created on first write.
func OpenBucket(ctx context.Context, location string) (*blob.Bucket, error) {
	url := location
	if !strings.Contains(location, "://") {
		dir, err := filepath.Abs(location)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving output directory %s", location)
		}
		url = "file://" + filepath.ToSlash(dir) + "?create_dir=true"
	}

	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bucket %s", location)
	}
	return bucket, nil
}

// Writer saves an image and a checkpoint into a bucket every time the
// renderer reaches a checkpoint
type Writer struct {
	bucket *blob.Bucket
	runID  string
	logger log.Logger
}

// NewWriter creates a writer. runID is attached as metadata to every blob.
func NewWriter(bucket *blob.Bucket, runID string, logger log.Logger) *Writer {
	return &Writer{bucket: bucket, runID: runID, logger: logger}
}

// SaveCheckpoint writes output.<iter>.png and checkpoint.<iter>.json
func (w *Writer) SaveCheckpoint(ctx context.Context, iter int, buf *renderer.Buffer) error {
	img := ToImage(buf, iter)
	if err := w.write(ctx, ImageKey(iter), "image/png", iter, func(out io.Writer) error {
		return png.Encode(out, img)
	}); err != nil {
		return err
	}

	if err := w.write(ctx, CheckpointKey(iter), "application/json", iter, func(out io.Writer) error {
		return EncodeCheckpoint(out, iter, buf)
	}); err != nil {
		return err
	}

	w.logger.Infof("saved %s and %s (average luminance %.4f)", ImageKey(iter), CheckpointKey(iter), AverageLuminance(img))
	return nil
}

// write stores one blob. A failed encode cancels the write so no partial
// blob is left behind.
func (w *Writer) write(ctx context.Context, key, contentType string, iter int, encode func(io.Writer) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	bw, err := w.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
		Metadata: map[string]string{
			"run-id": w.runID,
			"iter":   strconv.Itoa(iter),
		},
	})
	if err != nil {
		return errors.Wrapf(err, "creating %s", key)
	}

	if err := encode(bw); err != nil {
		cancel()
		bw.Close()
		return errors.Wrapf(err, "writing %s", key)
	}
	if err := bw.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", key)
	}
	return nil
}

// LoadCheckpoint reads the checkpoint stored under key
func LoadCheckpoint(ctx context.Context, bucket *blob.Bucket, key string) (int, *renderer.Buffer, error) {
	r, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "opening checkpoint %s", key)
	}
	defer r.Close()

	iter, buf, err := DecodeCheckpoint(r)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "loading %s", key)
	}
	return iter, buf, nil
}
