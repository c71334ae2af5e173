package infra

import (
	"errors"
	"log/slog"

	"tourism-api/internal/pkg/errs"
	"tourism-api/internal/pkg/pgconv"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
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

// WrapRepoErr classifies a driver error. DB failures are additionally marked
// as errs.ErrDatabaseOperationFailed so handlers can treat them as internal.
func WrapRepoErr(msg string, err error) error {
	kind := classify(err)

	slog.Error("Repository error: "+msg,
		slog.String("kind", string(kind)),
		slog.Any("error", err))

	if err != nil {
		err = errs.Wrap(err, msg)
	}
	repoErr := RepositoryError{Kind: kind, msg: msg, err: err}
	if kind == KindDBFailure {
		return errs.Mark(repoErr, errs.ErrDatabaseOperationFailed)
	}
	return repoErr
}

// NotFoundErr is returned for writes that matched no row.
func NotFoundErr(msg string) error {
	return RepositoryError{Kind: KindNotFound, msg: msg}
}

func DuplicateKeyErr(msg string) error {
	return RepositoryError{Kind: KindDuplicateKey, msg: msg}
}

func classify(err error) RepositoryErrorKind {
	switch {
	case pgconv.IsNoRows(err):
		return KindNotFound
	case pgconv.IsUniqueViolation(err):
		return KindDuplicateKey
	case pgconv.IsForeignKeyViolation(err):
		return KindForeignKeyViolated
	default:
		return KindDBFailure
	}
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
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
)
