package diag

import "go.uber.org/zap"

type logReporter struct {
	log *zap.Logger
}

// NewLogReporter writes each diagnostic as a warning. A nil logger is
// replaced by zap.NewNop.
func NewLogReporter(log *zap.Logger) Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &logReporter{log: log.Named("diag")}
}

func (r *logReporter) Report(d Diagnostic) {
	r.log.Warn("content stream diagnostic",
		zap.Stringer("kind", d.Kind),
		zap.String("operator", d.Operator),
		zap.Int("index", d.Index),
		zap.Error(d.Err),
	)
}
