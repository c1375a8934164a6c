// Package opentsdb drains a go-metrics registry on a fixed period and
// republishes every measurement as an OpenTSDB put record:
//
//	put <metric> <timestamp> <value> [<tagk>=<tagv> ...]
//
// Each record is handed to a Publisher, typically a kafka topic, from which
// a time series ingestion pipeline consumes it. Records are never batched,
// retried or persisted by this package.
//
// Per kind expansion:
//
//	counter    .count
//	gauge      .gauge
//	meter      .rate.mean .rate.1min .rate.5min .rate.15min
//	histogram  .pc.min .pc.max .pc.mean .pc.stddev .pc.median
//	           .pc.75-pc .pc.95-pc .pc.98-pc .pc.99-pc .pc.999-pc
//	timer      .timer.min .timer.mean .timer.stddev .timer.median
//	           .timer.75-pc .timer.95-pc .timer.98-pc .timer.99-pc .timer.999-pc
//
// Config.LegacyNames trims the sets to 9 histogram and 8 timer records:
// no 99th percentile for either, and the timer's 99.9th percentile named
// .timer.959-pc.
package opentsdb
