/*
Package whisper implements a fixed-size round-robin time series database
file format compatible with Graphite's Whisper storage engine.

A Whisper file stores one metric as a set of concentric archives at
progressively coarser resolutions. Writes land in the highest-resolution
archive that covers them and are automatically downsampled ("propagated")
into every coarser archive behind it. Every operation (Create, Info,
Fetch, Update) is stateless with respect to the caller: it opens the
file, does its work under an OS share lock appropriate to the access
mode, and closes it again.
*/
package whisper
