package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags registers the configuration flags on flag.CommandLine and
// parses the command line. Binaries that need extra flags must register
// them before calling it.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-r redis URL of the read cache
//	-cache-ttl read cache TTL (e.g., "5m")
//	-c/-config json file path with configs
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-log-level minimum log level
//	-purge-interval removed posts purge interval (e.g., "1h")
//	-purge-retention how long removed posts are kept (e.g., "720h")
//	-server server URL used by the client
//	-client-timeout client request timeout (e.g., "10s")
func ParseFlags() *StructuredConfig {
	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN string
	var redisURL string
	var cacheTTL time.Duration
	var jsonConfigPath string
	var requestTimeout time.Duration
	var logLevel string
	var purgeInterval, purgeRetention time.Duration
	var adapterAddress string
	var adapterTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.Var(&grpcServerAddress, "grpc-address", "Net grpc health server address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&redisURL, "r", "", "Redis URL of the read cache")
	flag.DurationVar(&cacheTTL, "cache-ttl", 0, "Read cache TTL (e.g., 5m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&logLevel, "log-level", "", "Minimum log level")
	flag.DurationVar(&purgeInterval, "purge-interval", 0, "Removed posts purge interval (e.g., 1h)")
	flag.DurationVar(&purgeRetention, "purge-retention", 0, "Removed posts retention (e.g., 720h)")
	flag.StringVar(&adapterAddress, "server", "", "Server URL used by the client")
	flag.DurationVar(&adapterTimeout, "client-timeout", 0, "Client request timeout (e.g., 10s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Cache: Cache{
				RedisURL: redisURL,
				TTL:      cacheTTL,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers: Workers{
			PurgeInterval:  purgeInterval,
			PurgeRetention: purgeRetention,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
