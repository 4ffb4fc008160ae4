package guikit

// StateStore persists widget state between frames.
// Unlike ImGui's hidden state, this is explicit and inspectable.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is an in-memory StateStore.
type MapStateStore map[ID]any

// Get retrieves a value from the store.
func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

// Set stores a value in the store.
func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

// Delete removes a value from the store.
func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState retrieves typed state from the context.
// Returns defaultVal if the state doesn't exist or has the wrong type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

// SetState stores typed state in the context.
func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

// DeleteState removes state from the context.
func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

// NumberInputState tracks text editing of a number input.
type NumberInputState struct {
	Editing  bool   // true while the value box accepts typed characters
	EditText string // text being edited
}
