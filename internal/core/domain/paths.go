package domain

import "path/filepath"

// LockFileName is the name of the persisted lock artifact inside a project.
const LockFileName = "requirements.lock"

// SetupScriptName is the name of the project's install script.
const SetupScriptName = "setup.py"

// Paths groups the filesystem locations a single command operates on.
// They are resolved once per invocation and passed explicitly.
type Paths struct {
	// Project is the project root directory.
	Project string

	// Venv is the virtualenv directory for this project and interpreter.
	Venv string

	// Lock is the location of the lock artifact.
	Lock string

	// SetupScript is the location of setup.py.
	SetupScript string
}

// ProjectPaths resolves the in-project locations for a project root.
// The venv location is resolved separately since it depends on settings
// and interpreter version.
func ProjectPaths(project string) Paths {
	return Paths{
		Project:     project,
		Lock:        filepath.Join(project, LockFileName),
		SetupScript: filepath.Join(project, SetupScriptName),
	}
}

// WithVenv returns a copy of p with the venv directory set.
func (p Paths) WithVenv(venv string) Paths {
	p.Venv = venv
	return p
}
