// internal/version/version.go
package version

// Version is the release tag baked into builds.
const Version = "0.2.0"
