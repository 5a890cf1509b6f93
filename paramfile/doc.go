// Package paramfile loads template parameters from data files. The format is
// chosen by file extension: JSON (.json), YAML (.yaml, .yml), TOML (.toml) or
// dotenv (.env). Every format must hold a flat mapping; null values are
// dropped so they render as absent, and booleans, numbers and timestamps are
// formatted as text.
package paramfile
