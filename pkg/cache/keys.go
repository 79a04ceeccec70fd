package cache

// Keyer derives cache keys.
type Keyer interface {
	// ArtifactKey returns the key of a rendered artifact of the document
	// whose content hashes to docHash.
	ArtifactKey(docHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts lists everything besides the document that changes a
// rendered artifact.
type ArtifactKeyOpts struct {
	Format       string   `json:"format"`
	Activations  []string `json:"activations,omitempty"`
	Animate      bool     `json:"animate,omitempty"`
	Scale        float64  `json:"scale,omitempty"`
	SettingsHash string   `json:"settings,omitempty"`
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements Keyer.
func (DefaultKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", docHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, keeping separate namespaces in a
// shared backend. The CLI scopes keys by build version so artifacts from
// different releases never mix.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// A nil inner keyer uses DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(docHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(docHash, opts)
}
