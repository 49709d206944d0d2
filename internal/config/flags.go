package config

import (
	"errors"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// NetAddress is a host:port flag value. Each successful Set also writes the
// canonical form into the bound target string.
type NetAddress struct {
	Host string
	Port int

	target *string
}

func newNetAddress(target *string) *NetAddress {
	return &NetAddress{target: target}
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The port must be positive and the host must be an
// IP address or "localhost".
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	if a.target != nil {
		*a.target = a.String()
	}
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// BindClientFlags registers the client flags on fs and returns the config
// the parsed values land in.
//
// Flags:
//
//	-d/--database      local SQLite file
//	--adapter-driver   rest | github
//	--adapter-address  document store API base URL
//	--adapter-timeout  outbound request timeout
//	--adapter-rate     outbound requests per second
//	--auto-sync-delay  quiet period before an automatic push
//	--bootstrap-delay  wait before the start-up pull
//	--log-file         client log file
//	-c/--config        JSON or TOML config file
func BindClientFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.StringVarP(&cfg.Storage.DB.DSN, "database", "d", "", "local SQLite database file")
	fs.StringVar(&cfg.Adapter.Driver, "adapter-driver", "", "document store driver (rest|github)")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "adapter-address", "", "document store API base URL")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "adapter-timeout", 0, "document store request timeout (e.g. 15s)")
	fs.Float64Var(&cfg.Adapter.RateLimit, "adapter-rate", 0, "document store requests per second")
	fs.DurationVar(&cfg.Workers.AutoSyncDelay, "auto-sync-delay", 0, "quiet period before an automatic push (e.g. 3s)")
	fs.DurationVar(&cfg.Workers.BootstrapDelay, "bootstrap-delay", 0, "wait before the start-up pull (e.g. 500ms)")
	fs.StringVar(&cfg.App.LogFile, "log-file", "", "client log file")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or TOML config file path")

	return cfg
}

// BindServerFlags registers the key-value proxy flags on fs and returns
// the config the parsed values land in.
//
// Flags:
//
//	-a/--address        listen address host:port
//	-d/--database-dsn   PostgreSQL URL or SQLite file
//	--token-sign-key    write token signing key
//	--token-issuer      write token issuer
//	--token-duration    lifetime of minted tokens
//	--request-timeout   inbound request timeout
//	-c/--config         JSON or TOML config file
func BindServerFlags(fs *pflag.FlagSet) *StructuredConfig {
	cfg := &StructuredConfig{}

	fs.VarP(newNetAddress(&cfg.Server.HTTPAddress), "address", "a", "listen address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "PostgreSQL URL or SQLite file")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "write token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "write token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "lifetime of minted write tokens (0 = no expiry)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "inbound request timeout (e.g. 10s)")
	fs.StringVar(&cfg.App.Version, "app-version", "", "version reported by /api/info")
	fs.StringVarP(&cfg.ConfigFilePath, "config", "c", "", "JSON or TOML config file path")

	return cfg
}
