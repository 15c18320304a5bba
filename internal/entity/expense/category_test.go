package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnParseCategory_ShouldResolveKnownNamesCaseInsensitively(t *testing.T) {
	assert.Equal(t, Food, ParseCategory("Food"))
	assert.Equal(t, Food, ParseCategory("food"))
	assert.Equal(t, Travel, ParseCategory("  TRAVEL "))
}

func Test_OnParseCategory_ShouldMapLegacyTypesToOther(t *testing.T) {
	assert.Equal(t, Other, ParseCategory("Business"))
	assert.Equal(t, Other, ParseCategory("Personal"))
}

func Test_OnParseCategory_ShouldMapUnknownToOther(t *testing.T) {
	assert.Equal(t, Other, ParseCategory("Gibberish"))
	assert.Equal(t, Other, ParseCategory(""))
}

func Test_OnEmoji_ShouldAlwaysResolve(t *testing.T) {
	for _, cat := range Categories {
		assert.NotEmpty(t, cat.Emoji())
	}
	assert.Equal(t, Other.Emoji(), Category("NoSuch").Emoji())
}
