// Package diag carries the recoverable conditions raised while a content
// stream is interpreted.
//
// Handlers never abort on bad input. Each problem becomes a [Diagnostic]
// with a [Kind], handed to a [Reporter]. Reporters can log through zap
// ([NewLogReporter]), collect ([Collector]), count ([Metrics]) or any
// combination ([Multi]).
//
// The sentinel errors (ErrNoCurrentPoint and friends) are what the
// diagnostics wrap, so callers can test them with errors.Is.
package diag
