/*
Package config reads Logger settings from the environment, .env files and JSON5 files.

Settings read from the environment:

	LOG_LEVEL                  off, error, warn, log, info, debug, trace, or their priority 0-6
	LOG_PREFIX                 prefix of the root Logger
	LOG_COLOR                  true or false
	LOG_TIMESTAMP_FORMAT       time.Layout style format
	LOG_CONSISTENT_LEVEL_WIDTH true or false
	LOG_PRINT_LEVEL            true or false
	LOG_FILE                   path of a file to append logs to

A JSON5 file sets the same values using the keys of [Config]:

	{
		// comments are allowed
		level: "debug",
		timestampFormat: "2006-01-02 15:04:05",
		file: "log/app.log",
	}

Settings left out of both are not set at all,
so a Logger configured with [Config.Options] inherits them as usual.
*/
package config
