package config

type YAMLFile struct {
	Unitcalc YAMLConfig `yaml:"unitcalc"`
}

type YAMLConfig struct {
	Display struct {
		Precision *int `yaml:"precision"`
	} `yaml:"display"`

	Defaults struct {
		Category string `yaml:"category"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"defaults"`

	Server struct {
		Addr          string `yaml:"addr"`
		MaxSessions   *int   `yaml:"max_sessions"`
		SessionTTL    string `yaml:"session_ttl"`
		ClientTimeout string `yaml:"client_timeout"`
	} `yaml:"server"`
}
