package configs

// Presale configures the ledger itself.
type Presale struct {
	// Admin is the only account allowed to change the usage fee.
	Admin string `env:"ADMIN" envDefault:"presale:admin"`
	// UsageFeeBip is the initial protocol fee in basis points, used when
	// the backend has no stored rate yet.
	UsageFeeBip int64 `env:"USAGE_FEE_BIP" envDefault:"1"`
	// Backend selects the campaign store: "postgres" or "memory". The
	// memory backend keeps everything in process and is meant for local
	// runs and demos.
	Backend string `env:"BACKEND" envDefault:"postgres"`
	// Seed inserts demo balances and campaigns on startup (memory
	// backend only).
	Seed bool `env:"SEED" envDefault:"false"`
}
