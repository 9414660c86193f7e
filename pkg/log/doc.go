// Package log provides the logging abstraction used by the urlfreezer client
// and CSV adapter.
//
// Library code never writes to stdout or stderr on its own. It logs through
// the [Logger] interface, which defaults to [NoopLogger]. The command-line
// tool wires a zerolog-backed adapter:
//
//	logger := log.NewZerologAdapter(os.Stderr, zerolog.DebugLevel)
//	c, err := client.ConnectHost(host, user, client.WithLogger(logger))
//
// Implement Logger to route messages into any other logging library.
package log
