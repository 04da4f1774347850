package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/idna"
)

// ErrNoSources is returned when the source list is set but empty.
var ErrNoSources = errors.New("no blocklist sources configured")

// DefaultSources are the public lists merged when HOSTS_SOURCES is unset.
// A list may appear more than once; every occurrence is downloaded.
var DefaultSources = []string{
	"https://raw.githubusercontent.com/StevenBlack/hosts/master/hosts",
	"https://someonewhocares.org/hosts/hosts",
	"https://urlhaus.abuse.ch/downloads/hostfile/",
	"https://raw.githubusercontent.com/StevenBlack/hosts/master/alternates/fakenews-gambling-porn/hosts",
	"https://urlhaus.abuse.ch/downloads/hostfile/",
	"http://winhelp2002.mvps.org/hosts.txt",
	"https://raw.githubusercontent.com/AdAway/adaway.github.io/master/hosts.txt",
	"https://urlhaus.abuse.ch/downloads/hostfile/",
	"https://raw.githubusercontent.com/openphish/public_feed/refs/heads/main/feed.txt",
	"https://easylist.to/easylist/easylist.txt",
	"https://easylist.to/easylist/easyprivacy.txt",
}

const (
	DefaultOutput       = "hosts_atualizados.txt"
	DefaultDedupeOutput = "HostBloqueados.txt"
	DefaultTarget       = "0.0.0.0"
)

// Merge configures the download and normalization pass.
type Merge struct {
	Sources      []string
	OutputPath   string
	Target       string        // sinkhole address written before every domain
	FetchTimeout time.Duration // per request
	Workers      int           // downloads in flight
}

// Dedupe configures the exact-line pass.
type Dedupe struct {
	Input  string
	Output string
}

// Log configures the process logger.
type Log struct {
	Level string
	File  string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadLog reads LOG_LEVEL and LOG_FILE.
func LoadLog() Log {
	return Log{
		Level: getenv("LOG_LEVEL", "info"),
		File:  os.Getenv("LOG_FILE"),
	}
}

// LoadMerge reads the merge configuration from the environment.
// An HOSTS_SOURCES that is set but holds no URL yields ErrNoSources.
func LoadMerge() (Merge, error) {
	cfg := Merge{
		Sources:    DefaultSources,
		OutputPath: getenv("HOSTS_OUTPUT", DefaultOutput),
		Target:     getenv("HOSTS_TARGET", DefaultTarget),
	}

	if raw, ok := os.LookupEnv("HOSTS_SOURCES"); ok {
		cfg.Sources = splitList(raw)
	}
	if len(cfg.Sources) == 0 {
		return Merge{}, ErrNoSources
	}
	sources := make([]string, 0, len(cfg.Sources))
	for _, s := range cfg.Sources {
		u, err := NormalizeSourceURL(s)
		if err != nil {
			return Merge{}, fmt.Errorf("invalid source %q: %w", s, err)
		}
		sources = append(sources, u)
	}
	cfg.Sources = sources

	if _, err := netip.ParseAddr(cfg.Target); err != nil {
		return Merge{}, fmt.Errorf("invalid HOSTS_TARGET=%q: %w", cfg.Target, err)
	}

	timeoutStr := getenv("HOSTS_FETCH_TIMEOUT", "30s")
	d, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return Merge{}, fmt.Errorf("invalid HOSTS_FETCH_TIMEOUT=%q: %w", timeoutStr, err)
	}
	if d < time.Second {
		return Merge{}, fmt.Errorf("HOSTS_FETCH_TIMEOUT too small (%s), must be >=1s", d)
	}
	if d > 10*time.Minute {
		return Merge{}, fmt.Errorf("HOSTS_FETCH_TIMEOUT too large (%s), must be <=10m", d)
	}
	cfg.FetchTimeout = d

	workersStr := getenv("HOSTS_FETCH_WORKERS", "8")
	n, err := strconv.Atoi(workersStr)
	if err != nil {
		return Merge{}, fmt.Errorf("invalid HOSTS_FETCH_WORKERS=%q: %w", workersStr, err)
	}
	if n < 1 || n > 64 {
		return Merge{}, fmt.Errorf("HOSTS_FETCH_WORKERS out of range (%d), must be 1..64", n)
	}
	cfg.Workers = n

	if cfg.OutputPath == "" {
		return Merge{}, fmt.Errorf("HOSTS_OUTPUT must not be empty")
	}

	return cfg, nil
}

// LoadDedupe reads the input and output paths of the exact-line pass.
func LoadDedupe() Dedupe {
	return Dedupe{
		Input:  getenv("HOSTS_DEDUPE_INPUT", DefaultOutput),
		Output: getenv("HOSTS_DEDUPE_OUTPUT", DefaultDedupeOutput),
	}
}

// splitList splits on commas and any whitespace, dropping empty items.
func splitList(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// sourceHosts maps hosts like idna.Lookup but without the STD3 rules, so
// hosts with underscores are accepted.
var sourceHosts = idna.New(idna.MapForLookup(), idna.StrictDomainName(false))

// NormalizeSourceURL checks that raw is an absolute http(s) URL and rewrites
// its host to lowercase ASCII, so internationalized hosts are requested in
// punycode form.
func NormalizeSourceURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		u.Scheme = strings.ToLower(u.Scheme)
	case "":
		return "", fmt.Errorf("url must contain scheme")
	default:
		return "", fmt.Errorf("unsupported scheme: %s", u.Scheme)
	}

	host := u.Hostname()
	if host == "" {
		return "", fmt.Errorf("empty host")
	}
	if _, err := netip.ParseAddr(host); err != nil {
		ascii, err := sourceHosts.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("idna: %w", err)
		}
		host = strings.ToLower(ascii)
	}

	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		u.Host = "[" + host + "]"
	} else {
		u.Host = host
	}
	return u.String(), nil
}
