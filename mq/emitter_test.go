package mq

import (
	"context"
	"testing"
)

func TestEmitNilEmitterIsNoop(t *testing.T) {
	var e *Emitter
	e.Emit(context.Background(), "customer", "abc", "created")

	e = NewEmitter(nil)
	e.Emit(context.Background(), "customer", "abc", "created")
}
