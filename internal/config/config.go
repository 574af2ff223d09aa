package config

import (
	"errors"
	"io/fs"
	"net"
	"os"

	"github.com/joho/godotenv"
)

// Defaults used when the environment doesn't provide a value.
const (
	DefaultIP       = "127.0.0.1"
	DefaultPort     = "61111"
	DefaultLogLevel = "info"
)

// Config describes the configuration for the list node to run on.
type Config interface {
	// IP provides the IP address where the server is intended to run.
	IP() string
	// Port provides the port where the server is supposed to run.
	Port() string
	// Level provides the log level of the node.
	Level() string
	// Addr provides the host:port pair the server listens on.
	Addr() string
}

var _ Config = (*SimpleConfig)(nil)

// SimpleConfig implements Config.
type SimpleConfig struct {
	IPAddr   string
	PortAddr string
	LogLevel string
}

// NewSimpleConfig returns a new simple configuration.
func NewSimpleConfig(IPAddr, PortAddr string) *SimpleConfig {
	return &SimpleConfig{
		IPAddr:   IPAddr,
		PortAddr: PortAddr,
		LogLevel: DefaultLogLevel,
	}
}

// IP returns the IP address from SimpleConfig.
func (scfg *SimpleConfig) IP() string {
	return scfg.IPAddr
}

// Port returns the port from SimpleConfig.
func (scfg *SimpleConfig) Port() string {
	return scfg.PortAddr
}

// Level returns the log level from SimpleConfig.
func (scfg *SimpleConfig) Level() string {
	return scfg.LogLevel
}

// Addr returns the host:port pair the node listens on. IPv6 hosts
// are bracketed.
func (scfg *SimpleConfig) Addr() string {
	return net.JoinHostPort(scfg.IPAddr, scfg.PortAddr)
}

// Load reads DLL_IP, DLL_PORT and DLL_LOG_LEVEL from the environment,
// after loading a .env file from the working directory if there is one.
func Load() (*SimpleConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &SimpleConfig{
		IPAddr:   getEnv("DLL_IP", DefaultIP),
		PortAddr: getEnv("DLL_PORT", DefaultPort),
		LogLevel: getEnv("DLL_LOG_LEVEL", DefaultLogLevel),
	}, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
