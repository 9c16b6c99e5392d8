package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Embedded(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "AI-RD1", c.Meta.Title)
	assert.Len(t, c.Features.Items, 5)
	assert.Len(t, c.UseCases.Items, 7)
	require.Len(t, c.Pricing.Tiers, 3)
	assert.True(t, c.Pricing.Tiers[1].Popular)
	assert.Equal(t, "£0.65", c.Pricing.Tiers[1].Price)
	assert.Equal(t, "From Customer to Business", c.Hero.Badge)
	assert.Equal(t, "+1", c.DialCodes[0].Prefix)
	assert.Equal(t, "US +1", c.DialCodes[0].Option())

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, c, again)
}

func TestCatalog_HasDialCode(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.True(t, c.HasDialCode("+44"))
	assert.False(t, c.HasDialCode("+999"))
	assert.False(t, c.HasDialCode(""))
}

func TestParse_Invalid(t *testing.T) {
	doc := `
meta:
  title: ""
pricing:
  tiers:
    - name: A
      popular: true
    - name: B
      popular: true
dial_codes:
  - country: US
    prefix: "1"
`
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.ErrorContains(t, err, "meta.title is empty")
	assert.ErrorContains(t, err, "2 tiers marked popular")
	assert.ErrorContains(t, err, `prefix "1" must start with +`)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("meta: [unterminated"))
	assert.ErrorContains(t, err, "parse content")
}
