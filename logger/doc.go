/*
Package logger provides the hierarchical [Logger] tlog is built around
and the [Transport] interface its output flows through.

# Overview

A Logger writes messages at a [github.com/xy-planning-network/tlog.LogLevel].
A message is only written when its level passes the Logger's threshold;
[*Logger.IsLevelEnabled] exposes that decision.
Every written message becomes a [Record], which is handed to each Transport
registered on the Logger and then to those of every ancestor, child first.

Log messages rendered by [*Logger.FormatMessage] are composed of a few parts:
	- timestamp
	- log level
	- prefixes
	- args

Here's an example:
	[15:55:21.042][WARN] [http][dashboard] cache miss {"user":1}

# Hierarchy

[*Logger.CreateLogger] and [*Logger.CreatePrefixedLogger] create child Loggers.
A child reads every setting it was not given from its parent, each time the setting is used,
so a parent's [*Logger.SetLogLevel] is seen by children straight away.
A child's prefix is appended to those of its ancestors.

Records are not copied into a child's Transports;
instead, a child forwards its Records up the tree.
A Transport on the root Logger therefore sees everything written anywhere below it.

# Timing

[*Logger.TimeStart], [*Logger.Time], [TimeValue] and [TimeAsync] write a message,
run or wait on some work, and write the message again with how long it took:
	[15:55:21.042][INFO] building index
	[15:55:21.311][INFO] building index finished. (268.914ms)
*/
package logger
