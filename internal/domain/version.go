package domain

// Version is stamped at build time with -ldflags "-X .../internal/domain.Version=...".
var Version = "dev"
