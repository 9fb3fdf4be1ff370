package ports

import "context"

type CommitSink interface {
	Commit(ctx context.Context, message string) error
}
