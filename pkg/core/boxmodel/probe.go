package boxmodel

import (
	lru "github.com/hashicorp/golang-lru"

	"github.com/matzehuels/barfly/pkg/core/style"
)

// DefaultMemoSize is the number of distinct styles a [CSSProbe] remembers.
const DefaultMemoSize = 256

// CSSProbe computes [Padding] from the CSS box model of a style dictionary.
// Results are memoised per distinct style.
type CSSProbe struct {
	memo *lru.Cache
}

// NewCSSProbe returns a probe remembering up to size styles. A size below 1
// uses [DefaultMemoSize].
func NewCSSProbe(size int) *CSSProbe {
	if size < 1 {
		size = DefaultMemoSize
	}
	memo, err := lru.New(size)
	if err != nil {
		// lru.New only fails for non-positive sizes
		panic(err)
	}
	return &CSSProbe{memo: memo}
}

// Measure returns the outer size of a zero-sized bar styled with st.
// Explicit width and height in st are ignored: the probe always measures an
// empty content box.
func (p *CSSProbe) Measure(st style.Style) (Padding, error) {
	key := st.String()
	if v, ok := p.memo.Get(key); ok {
		return v.(Padding), nil
	}
	pad := Outer(st)
	p.memo.Add(key, pad)
	return pad, nil
}

// Len returns the number of memoised styles.
func (p *CSSProbe) Len() int { return p.memo.Len() }

var _ Probe = (*CSSProbe)(nil)
