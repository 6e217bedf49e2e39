// internal/config/model.go
//
// Typed configuration model for the Roasted Fig site server.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                  – dotenv values,
//   • `conf/global.yaml`                    – primary static file,
//   • `FIG_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Site section
//

// Site identifies the café and the addresses enquiries are routed to.
// ContactEmail is the fixed recipient of composed contact drafts.
type Site struct {
	Name         string `koanf:"name"          validate:"required"`
	ContactEmail string `koanf:"contact_email" validate:"required,email"`
	Phone        string `koanf:"phone"`
	Address      string `koanf:"address"`
	MapsURL      string `koanf:"maps_url"      validate:"omitempty,url"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or FIG_ROOT override) so later code can build
// absolute file paths for templates, menu data, and logs.
type Paths struct {
	Root string // FIG_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP  HTTP  `koanf:"http"`
	Site  Site  `koanf:"site"`
	Paths Paths `koanf:"-"` // not loaded from config files
}
