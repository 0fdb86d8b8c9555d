package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
}

type Jwt struct {
	Secret      string `json:"secret" yaml:"secret"`
	ExpiresTime int64  `json:"expires_time" yaml:"expires_time"`
}
