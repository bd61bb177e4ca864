package constants

import "time"

var DatabaseConfig = struct {
	ConnectTimeout  time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	BusyTimeout     time.Duration
}{
	ConnectTimeout:  5 * time.Second,
	MaxOpenConns:    25,
	MaxIdleConns:    5,
	ConnMaxLifetime: 5 * time.Minute,
	BusyTimeout:     5 * time.Second, // SQLite busy_timeout
}

var ServerConfig = struct {
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	BuildTimeout      time.Duration
	HealthTimeout     time.Duration
}{
	ReadHeaderTimeout: 10 * time.Second,
	ShutdownTimeout:   10 * time.Second,
	BuildTimeout:      30 * time.Second,
	HealthTimeout:     2 * time.Second,
}

var Tables = struct {
	Profile   string
	Abilities string
	Virtues   string
	Flaws     string
}{
	Profile:   "akin_profile",
	Abilities: "akin_abilities",
	Virtues:   "akin_virtues",
	Flaws:     "akin_flaws",
}

var IDPrefixes = struct {
	Ability string
	Virtue  string
	Flaw    string
}{
	Ability: "abil",
	Virtue:  "virt",
	Flaw:    "flaw",
}

const ServiceName = "Biblioteca Ars Magica API"

const ServiceVersion = "1.0.0"
