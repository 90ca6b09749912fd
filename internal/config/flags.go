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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-env application environment (development|production)
//	-db-driver database driver (pgx|sqlite3)
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "168h")
//	-otp-ttl one-time code lifetime (e.g., "10m")
//	-bcrypt-cost bcrypt work factor
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-smtp-host, -smtp-port, -smtp-from smtp delivery settings
//	-webhook-url http delivery endpoint
//	-otp-sweep-interval expired code sweep interval
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var environment string
	var dbDriver, databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration, otpTTL time.Duration
	var bcryptCost int
	var requestTimeout time.Duration
	var smtpHost, smtpFrom string
	var smtpPort int
	var webhookURL string
	var sweepInterval time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&environment, "env", "", "Application environment (development|production)")
	flag.StringVar(&dbDriver, "db-driver", "", "Database driver (pgx|sqlite3)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 168h)")
	flag.DurationVar(&otpTTL, "otp-ttl", 0, "One-time code lifetime (e.g., 10m)")
	flag.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&smtpHost, "smtp-host", "", "SMTP host")
	flag.IntVar(&smtpPort, "smtp-port", 0, "SMTP port")
	flag.StringVar(&smtpFrom, "smtp-from", "", "SMTP sender address")
	flag.StringVar(&webhookURL, "webhook-url", "", "HTTP delivery endpoint")
	flag.DurationVar(&sweepInterval, "otp-sweep-interval", 0, "Expired code sweep interval")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Env:           environment,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			OTPTTL:        otpTTL,
			BcryptCost:    bcryptCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: dbDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Notifier: Notifier{
			SMTP: SMTP{
				Host: smtpHost,
				Port: smtpPort,
				From: smtpFrom,
			},
			WebhookURL: webhookURL,
		},
		Workers:      Workers{OTPSweepInterval: sweepInterval},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the default server address.
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
