package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// HandlerFunc produces the reply for one chat command. args carries
// whatever followed the command word, unparsed.
type HandlerFunc func(ctx context.Context, args string) (string, error)

// Router maps command names to their handlers. Registration happens at
// startup; dispatch is read-only after that.
type Router struct {
	handlers map[string]HandlerFunc
}

func NewRouter() *Router {
	return &Router{handlers: make(map[string]HandlerFunc)}
}

// Register binds a command name to a handler. Names are matched
// case-insensitively at dispatch time.
func (r *Router) Register(name string, h HandlerFunc) {
	r.handlers[strings.ToLower(name)] = h
}

// Dispatch runs the handler registered for command, or errors when none
// is.
func (r *Router) Dispatch(ctx context.Context, command, args string) (string, error) {
	h, ok := r.handlers[strings.ToLower(command)]
	if !ok {
		return "", fmt.Errorf("unknown command %q", command)
	}
	return h(ctx, args)
}

// Commands lists the registered command names, sorted.
func (r *Router) Commands() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
