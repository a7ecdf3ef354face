package get_report

import "context"

type ReportService interface {
	Render(ctx context.Context) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
