package params

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueSealed(t *testing.T) {
	var _ Value = Undefined{}
	var _ Value = Null{}
	var _ Value = Bool(true)
	var _ Value = Number(1.5)
	var _ Value = String("s")
	var _ Value = Array{Number(1), String("a")}
	var _ Value = Object{"k": Bool(false)}
}

func TestKeyIsPublic(t *testing.T) {
	assert.True(t, KeyIsPublic("format"))
	assert.True(t, KeyIsPublic("a_b"))
	assert.False(t, KeyIsPublic("_cache"))
	assert.False(t, KeyIsPublic("_"))
}

func TestPublicKeys(t *testing.T) {
	p := Params{
		"zeta":    Number(1),
		"alpha":   Number(2),
		"_hidden": Number(3),
		"Beta":    Number(4),
	}

	assert.Equal(t, []string{"Beta", "alpha", "zeta"}, p.PublicKeys())
	assert.Empty(t, Params{"_a": Null{}}.PublicKeys())
	assert.Empty(t, Params{}.PublicKeys())
}

func TestPublic(t *testing.T) {
	p := Params{"a": Number(1), "_b": Number(2)}

	pub := p.Public()

	assert.Len(t, pub, 1)
	assert.Contains(t, pub, "a")
	assert.Len(t, p, 2, "original must not be modified")
}

func TestSortedKeysUTF16Order(t *testing.T) {
	// U+1F600 encodes as a surrogate pair (0xD83D ...) and sorts before
	// U+FF21 (0xFF21) in UTF-16, although UTF-8 byte order says otherwise.
	obj := Object{
		"Ａ":          Null{},
		"\U0001F600": Null{},
		"a":          Null{},
	}

	assert.Equal(t, []string{"a", "\U0001F600", "Ａ"}, obj.SortedKeys())
}

func TestClone(t *testing.T) {
	p := Params{"a": Number(1)}
	c := p.Clone()
	c["b"] = Number(2)

	assert.Len(t, p, 1)
	assert.Len(t, c, 2)
}
