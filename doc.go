// Package lisptick is a client for the LispTick expression-evaluation
// server: it sends a textual request over TCP and decodes the streamed
// S-expression response into structured values.
//
// # Quick Start
//
// Materialize a full result:
//
//	client, err := lisptick.NewClient("lisptick.org", lisptick.DefaultPort)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.GetResult(`(+ 3 4)`)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result) // 7
//
// Stream a large time series without holding it in memory:
//
//	err = client.WalkResult(request, func(r *stream.Reader, d stream.Delivery) error {
//		if d.Point != nil {
//			fmt.Println(d.UID, d.Point.Time, d.Point.Value)
//		}
//		return nil
//	})
//
// Bound a materialized response's size with a point budget:
//
//	result, err = client.GetResultWithLimit(request, 100_000)
//	if errors.Is(err, errs.ErrPointsLimitReached) {
//		// switch to WalkResult or narrow the query
//	}
//
// # Package Layout
//
//   - lisptick (this package): Client, request lifecycle
//   - stream: frame interpreter, walk callback, materializer
//   - value: the result data model (scalars, arrays, time series, tensors)
//   - wire: the binary frame codec and request envelope
//   - errs: sentinel errors for errors.Is matching
//
// # Concurrency
//
// One request owns one connection for its lifetime and runs entirely on the
// caller's goroutine; walk callbacks are invoked inline and may block the
// decode loop. A Client itself holds no per-request state and may be shared.
package lisptick
