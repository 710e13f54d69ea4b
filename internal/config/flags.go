// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and port. It implements flag.Value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the client command-line flags from args.
//
// Flags:
//
//	-a               storefront API address (e.g. http://localhost:4000)
//	-graphql-path    GraphQL endpoint path
//	-request-timeout request timeout (e.g. "15s")
//	-d               database DSN (SQLite path or postgres:// URL)
//	-cipher-key      password obfuscation passphrase
//	-oauth-address   Google callback listener address host:port
//	-log-file        log file path
//	-log-level       log level
//	-c/-config       JSON config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)

	var apiAddress, graphQLPath, dsn, cipherKey, logFile, logLevel, jsonConfigPath string
	var oauthAddress NetAddress
	var requestTimeout time.Duration

	fs.StringVar(&apiAddress, "a", "", "Storefront API address")
	fs.StringVar(&graphQLPath, "graphql-path", "", "GraphQL endpoint path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&dsn, "d", "", "Database DSN")
	fs.StringVar(&cipherKey, "cipher-key", "", "Password cipher passphrase")
	fs.Var(&oauthAddress, "oauth-address", "Google callback listener host:port")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			CipherKey: cipherKey,
			LogFile:   logFile,
			LogLevel:  logLevel,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			GraphQLPath:    graphQLPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: dsn},
		},
		OAuth:        OAuth{CallbackAddress: oauthAddress.String()},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns host:port, or an empty string when nothing is set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
