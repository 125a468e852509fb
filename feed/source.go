package feed

import "context"

// Source produces message texts until its context ends or it fails
// deliver is called from the source's goroutine and must not block
type Source interface {
	Run(ctx context.Context, deliver func(text string)) error
}
