// Package stream interprets a LispTick response stream: a multiplexed
// sequence of typed, UID-identified frames that the server emits while
// evaluating a request.
//
// The package offers two consumption modes:
//
// Streaming, via Reader.Walk: the callback observes every user-visible
// delivery in wire order, interleaving permitted. This is the mode for
// running aggregates over large time series:
//
//	reader, _ := stream.NewReader(conn)
//	err := reader.Walk(func(r *stream.Reader, d stream.Delivery) error {
//		if d.Point != nil {
//			fmt.Println(d.UID, d.Point)
//		}
//		return nil
//	})
//
// Materialization, via Materializer.Run: the whole response is assembled
// into a single value.Value tree, with an optional point budget guarding
// against runaway result sizes:
//
//	reader, _ := stream.NewReader(conn)
//	result, err := stream.NewMaterializer(reader, stream.NoLimit).Run()
//
// A Reader owns the interpreter state (array layouts, time-series
// registrations) for exactly one response; it is single-threaded,
// synchronous, and not reusable across requests.
package stream
