package value

// Env holds variable bindings with lexical parent chaining. The
// statement interpreter owns scoping rules; this is just the storage.
type Env struct {
	bindings map[string]Value
	parent   *Env
}

func NewEnv(parent *Env) *Env {
	return &Env{bindings: make(map[string]Value), parent: parent}
}

// Get walks the parent chain. An unbound name yields Undef rather
// than an error: "no value produced" is an ordinary value here.
func (e *Env) Get(name string) Value {
	if val, ok := e.bindings[name]; ok {
		return val
	}

	if e.parent != nil {
		return e.parent.Get(name)
	}

	return Undef
}

// Has reports whether name is bound in this Env or any parent.
func (e *Env) Has(name string) bool {
	if _, ok := e.bindings[name]; ok {
		return true
	}
	if e.parent != nil {
		return e.parent.Has(name)
	}
	return false
}

// Set binds name in this Env, shadowing any parent binding.
func (e *Env) Set(name string, val Value) Value {
	e.bindings[name] = val
	return val
}
