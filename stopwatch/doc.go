/*
Package stopwatch measures elapsed time across one or more start/stop cycles.

A [Stopwatch] starts out idle.
[*Stopwatch.Start] moves it into the running state and [*Stopwatch.Stop] pauses it,
adding the time since the last Start to its total.
Starting it again resumes counting from that total, so a timed operation can be paused
while, say, waiting on user input, without the wait counting against it.

[*Stopwatch.DurationText] renders the total for humans:

	12.345ms
	1s250.000ms
	2m3s4.500ms
*/
package stopwatch
