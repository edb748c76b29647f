package lisptick

import (
	"fmt"
	"net"
	"strconv"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lisptickio/lisptick-go/errs"
	"github.com/lisptickio/lisptick-go/internal/hash"
	"github.com/lisptickio/lisptick-go/internal/options"
	"github.com/lisptickio/lisptick-go/stream"
	"github.com/lisptickio/lisptick-go/value"
	"github.com/lisptickio/lisptick-go/wire"
)

// DefaultPort is the conventional LispTick server port.
const DefaultPort = 12006

// DialFunc opens the transport connection for one request. The default uses
// net.Dial; tests and callers that need deadlines or custom routing inject
// their own.
type DialFunc func(network, address string) (net.Conn, error)

// Client issues evaluation requests against one LispTick endpoint. Each
// request dials its own connection, owns it for the stream's lifetime, and
// releases it on every terminal path.
//
// A Client holds no connection state and is safe to reuse across requests.
type Client struct {
	host   string
	port   int
	logger logrus.FieldLogger
	dial   DialFunc
}

// Option configures a Client at construction time.
type Option = options.Option[*Client]

// WithLogger injects the structured logger used for request tracing.
// Defaults to the logrus standard logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return options.NoError(func(c *Client) {
		c.logger = logger
	})
}

// WithDialFunc replaces the transport dialer. A net.Dialer's Timeout bounds
// connection setup only; read deadlines live on the returned connection.
// The protocol layer itself never times out.
func WithDialFunc(dial DialFunc) Option {
	return options.NoError(func(c *Client) {
		c.dial = dial
	})
}

// NewClient creates a client for the server at host:port.
func NewClient(host string, port int, opts ...Option) (*Client, error) {
	c := &Client{
		host:   host,
		port:   port,
		logger: logrus.StandardLogger(),
		dial:   net.Dial,
	}

	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

// GetResult evaluates code on the server and materializes the full response
// tree, with no bound on its size. It blocks until the stream terminates.
func (c *Client) GetResult(code string) (value.Value, error) {
	return c.GetResultWithLimit(code, stream.NoLimit)
}

// GetResultWithLimit is GetResult with a point budget: once the response has
// produced pointBudget deliveries the stream is aborted and
// errs.ErrPointsLimitReached is returned. A negative budget disables the
// check.
func (c *Client) GetResultWithLimit(code string, pointBudget int64) (value.Value, error) {
	var result value.Value

	err := c.withConn(code, func(r *stream.Reader) error {
		v, err := stream.NewMaterializer(r, pointBudget).Run()
		if err != nil {
			return err
		}
		result = v

		return nil
	})
	if err != nil {
		return value.Value{}, err
	}

	return result, nil
}

// WalkResult evaluates code on the server and invokes fn for every delivery
// in wire order, without assembling a result tree. It blocks until the
// stream terminates; deliveries made before a mid-stream failure remain
// valid.
func (c *Client) WalkResult(code string, fn stream.WalkFunc) error {
	return c.withConn(code, func(r *stream.Reader) error {
		return r.Walk(fn)
	})
}

// withConn runs one request: dial, send the envelope, hand the decode loop
// to run, and release the connection on every exit path.
func (c *Client) withConn(code string, run func(*stream.Reader) error) error {
	logger := c.logger.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"code_fp":    fmt.Sprintf("%016x", hash.Fingerprint(code)),
	})

	// Oversize requests fail before any I/O.
	framed, err := wire.EncodeRequest(code)
	if err != nil {
		return err
	}

	conn, err := c.dial("tcp", net.JoinHostPort(c.host, strconv.Itoa(c.port)))
	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrConnectFailed, err)
	}
	defer conn.Close()

	if err := wire.SendFramed(conn, framed); err != nil {
		logger.WithError(err).Error("request send failed")
		return err
	}

	logger.Debug("request sent")

	reader, err := stream.NewReader(conn, stream.WithLogger(logger))
	if err != nil {
		return err
	}

	if err := run(reader); err != nil {
		logger.WithError(err).Warn("stream terminated with error")
		return err
	}

	logger.Debug("stream completed")

	return nil
}
