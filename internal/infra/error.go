package infra

import (
	"context"
	"errors"
	"log/slog"

	"room-booking/internal/pkg/errs"
	"room-booking/internal/pkg/pgconv"
)

type RepositoryErrorKind string

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)

type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	msg        string
	err        error // wrapped low-level error
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

// WrapRepoErr wraps a driver error. The kind defaults to DB_FAILURE.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}

	level := slog.LevelError
	if k != KindDBFailure {
		level = slog.LevelDebug
	}
	attrs := []any{slog.String("kind", string(k))}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	slog.Log(context.Background(), level, "Repository error: "+msg, attrs...)

	return RepositoryError{Kind: k, Constraint: pgconv.ConstraintName(err), msg: msg, err: errs.Wrap(err, msg)}
}

// ClassifyPgErr maps well-known Postgres failures onto repository kinds.
func ClassifyPgErr(msg string, err error) error {
	switch {
	case pgconv.IsNoRows(err):
		return WrapRepoErr(msg, err, KindNotFound)
	case pgconv.IsUniqueViolation(err):
		return WrapRepoErr(msg, err, KindDuplicateKey)
	case pgconv.IsForeignKeyViolation(err):
		return WrapRepoErr(msg, err, KindForeignKeyViolated)
	default:
		return WrapRepoErr(msg, err)
	}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsConstraint reports whether err was raised by the named constraint.
func IsConstraint(err error, name string) bool {
	var e RepositoryError
	return errors.As(err, &e) && e.Constraint == name
}
