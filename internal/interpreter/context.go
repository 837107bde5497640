package interpreter

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Context carries everything a session needs from its caller.
type Context struct {
	Grid *Grid
	IO   IO

	// Logger receives debug traces; nil means no logging.
	Logger *zap.Logger
	// TraceInterpreter logs every step of the traversal engine.
	TraceInterpreter bool
	// TraceMachine logs every command the machine executes.
	TraceMachine bool
}

// loggers returns the interpreter and machine loggers, both tagged with a
// fresh session id. Disabled channels get a no-op logger.
func (c *Context) loggers() (inter, vm *zap.Logger) {
	inter, vm = zap.NewNop(), zap.NewNop()
	if c.Logger == nil || !(c.TraceInterpreter || c.TraceMachine) {
		return inter, vm
	}
	base := c.Logger.With(zap.String("session", uuid.NewString()))
	if c.TraceInterpreter {
		inter = base.Named("interpreter")
	}
	if c.TraceMachine {
		vm = base.Named("vm")
	}
	return inter, vm
}
