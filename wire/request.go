package wire

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lisptickio/lisptick-go/endian"
	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/internal/pool"
)

// MaxRequestSize is the largest JSON-encoded request envelope the server
// will accept.
const MaxRequestSize = 64 * 1024

type requestEnvelope struct {
	Code string `json:"code"`
}

// EncodeRequest builds the on-wire request envelope for code: a JSON object
// {"code": code}, prefixed by its own length as a little-endian uint16.
// It performs no I/O; it returns errs.ErrMessageTooLarge if the encoded
// envelope exceeds MaxRequestSize.
func EncodeRequest(code string) ([]byte, error) {
	payload, err := json.Marshal(requestEnvelope{Code: code})
	if err != nil {
		return nil, fmt.Errorf("encoding request envelope: %w", err)
	}

	if len(payload) > MaxRequestSize {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrMessageTooLarge, len(payload))
	}

	buf := pool.GetFrameBuffer()
	defer pool.PutFrameBuffer(buf)

	buf.B = endian.GetLittleEndianEngine().AppendUint16(buf.B, uint16(len(payload)))
	buf.MustWrite(payload)

	framed := make([]byte, buf.Len())
	copy(framed, buf.Bytes())

	return framed, nil
}

// SendRequest writes the framed request envelope for code to w, blocking
// until every byte is accepted.
func SendRequest(w io.Writer, code string) error {
	framed, err := EncodeRequest(code)
	if err != nil {
		return err
	}

	return SendFramed(w, framed)
}

// SendFramed writes an already-encoded envelope to w. It fails with
// errs.ErrSendFailed if a write makes no progress.
func SendFramed(w io.Writer, framed []byte) error {
	for len(framed) > 0 {
		n, err := w.Write(framed)
		if err != nil {
			return fmt.Errorf("%w: %v", errs.ErrSendFailed, err)
		}
		if n == 0 {
			return errs.ErrSendFailed
		}

		framed = framed[n:]
	}

	return nil
}
