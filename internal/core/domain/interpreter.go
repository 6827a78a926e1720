package domain

// Interpreter describes the Python interpreter a command operates with.
// All ambient environment data the core needs arrives through this struct;
// the core itself never reads process environment state.
type Interpreter struct {
	// Binary is the absolute path to the interpreter executable.
	Binary string

	// Version is the interpreter version, e.g. "3.12.1".
	Version string

	// Platform is the interpreter's platform string, e.g. "linux".
	Platform string
}
