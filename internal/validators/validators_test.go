package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, s := range valid {
		assert.True(t, IsClock(s), s)
	}

	invalid := []string{"", "8:30", "08:30:00", "24:00", "12:60", "ab:cd", "08-30"}
	for _, s := range invalid {
		assert.False(t, IsClock(s), s)
	}
}

func TestNormalizeClock(t *testing.T) {
	assert.Equal(t, "08:30", NormalizeClock("08:30:00"))
	assert.Equal(t, "08:30", NormalizeClock("08:30"))
	assert.Equal(t, "8:30", NormalizeClock("8:30"))
}

func TestCleanPhone(t *testing.T) {
	assert.Equal(t, "11987654321", CleanPhone("(11) 98765-4321"))
	assert.Equal(t, "5511987654321", CleanPhone("+55 11 98765-4321"))
	assert.Equal(t, "", CleanPhone("abc"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("11987654321"))
	assert.True(t, IsPhone("(11) 98765-4321"))

	assert.False(t, IsPhone("1234567"))          // curto demais
	assert.False(t, IsPhone("1234567890123456")) // longo demais
	assert.False(t, IsPhone(""))
}
