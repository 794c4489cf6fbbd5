package responder

// HandlerName returns the conventional name a handler for the action would
// carry. It only appears in unsupported-action diagnostics; lookups are
// plain map reads keyed by action.
func HandlerName(action string) string {
	return "respond_for_" + action
}

// resolve maps an action to a handler with fixed precedence:
//
//  1. a handler registered for the action itself (definition chain, then
//     built-in defaults),
//  2. a handler registered for the action's alias target.
//
// Alias resolution is a single hop; an alias pointing at another alias does
// not resolve further, so cyclic alias configurations are inert. There is no
// fallback beyond this order.
func (d *Definition) resolve(action string) (Handler, bool) {
	if h, ok := d.handler(action); ok {
		return h, true
	}
	if target, ok := d.aliasTarget(action); ok {
		if h, ok := d.handler(target); ok {
			return h, true
		}
	}
	return nil, false
}
