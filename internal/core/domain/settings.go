package domain

// Settings are the user-tunable knobs loaded from denv.yaml. Every field
// has a zero-value default so a missing settings file is valid.
type Settings struct {
	// VenvOutsideProject places virtualenvs in the user cache directory
	// instead of `.venv/<version>` inside the project.
	VenvOutsideProject bool

	// PythonBinary overrides interpreter discovery with an explicit path.
	PythonBinary string
}
