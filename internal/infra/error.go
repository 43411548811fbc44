package infra

import (
	"context"
	"errors"
	"log/slog"

	"hotel-booking/internal/pkg/errs"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // domain sentinel or low-level cause
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr logs the failure and returns a RepositoryError whose chain still
// matches err with errors.Is. Expected outcomes such as conflicts log at warn.
func WrapRepoErr(ctx context.Context, slogger *slog.Logger, kind RepositoryErrorKind, msg string, err error, attrs ...any) error {
	logArgs := append([]any{slog.String("kind", string(kind))}, attrs...)

	level := slog.LevelError
	if kind == KindNotFound || kind == KindConflict || kind == KindInvalid {
		level = slog.LevelWarn
	}
	slogger.Log(ctx, level, "Repository error: "+msg, logArgs...)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound RepositoryErrorKind = "NOT_FOUND"
	KindConflict RepositoryErrorKind = "CONFLICT"
	KindInvalid  RepositoryErrorKind = "INVALID"
)
