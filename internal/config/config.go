// Package config reads server settings from the environment.
package config

import (
	"net"
	"os"
)

// SSH holds the listener settings for the SSH entrypoint.
type SSH struct {
	Host        string
	Port        string
	HostKeyPath string
}

// LoadSSH reads the SSH settings from the environment, with defaults suited
// to a container deployment. An empty SSH_HOST_KEY disables the host key path.
func LoadSSH() SSH {
	return SSH{
		Host:        getenv("SSH_HOST", "::"),
		Port:        getenv("SSH_PORT", "2222"),
		HostKeyPath: getenv("SSH_HOST_KEY", "/app/keys/host_key"),
	}
}

// Addr returns the host:port address to listen on.
func (c SSH) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
