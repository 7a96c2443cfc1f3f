/*
Package transport provides the sinks Records written through a [logger.Logger] end up in.

Every type here implements [logger.Transport] and is registered with
[*logger.Logger.AddTransport] or [logger.WithTransports].
Sinks holding resources also implement [io.Closer],
and are closed along with the Logger they are registered on by [*logger.Logger.Destroy].

	root := logger.New(logger.WithTransports(
		transport.NewConsole(),
		transport.NewFile("log/app.log"),
	))
	defer root.Destroy()

[Queued] holds Records until it is given somewhere to write them,
which lets an application start logging before it knows where logs go.
[File] builds on it.
*/
package transport
