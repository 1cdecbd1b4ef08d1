package service

import "context"

// transition is the one fetch, compare, write, invalidate sequence shared by
// every status change.
type transition[S comparable] struct {
	action string
	// current loads the present status; its errors are returned as is.
	current func(ctx context.Context) (S, error)
	target  S
	// allowed, when set, rejects moves the workflow forbids.
	allowed  func(from S) bool
	rejected string
	write    func(ctx context.Context) error

	done       string
	unchanged  string
	revalidate []string
}

func (t transition[S]) run(ctx context.Context) (*Result, error) {
	from, err := t.current(ctx)
	if err != nil {
		return nil, err
	}
	if from == t.target {
		return &Result{Message: t.unchanged}, nil
	}
	if t.allowed != nil && !t.allowed(from) {
		return nil, fail(ErrValidation, t.rejected)
	}
	if err := t.write(ctx); err != nil {
		return nil, unexpected(ctx, t.action, err)
	}
	return &Result{Message: t.done, Revalidate: t.revalidate}, nil
}
