package config

import "fmt"

type Redis struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Auth     string `json:"auth" yaml:"auth"`
	Database int    `json:"database" yaml:"database"`
}

func (r *Redis) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
