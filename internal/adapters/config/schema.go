package config

// settingsFile represents the structure of the denv.yaml settings file.
type settingsFile struct {
	Venv   venvSettings   `yaml:"venv"`
	Python pythonSettings `yaml:"python"`
}

type venvSettings struct {
	OutsideProject bool `yaml:"outsideProject"`
}

type pythonSettings struct {
	Binary string `yaml:"binary"`
}
