package simscsi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileID(t *testing.T) {
	cases := map[string]uint16{
		"6f3a":   0x6f3a,
		"0x6F3A": 0x6f3a,
		"3F00":   0x3f00,
	}
	for in, want := range cases {
		got, err := parseFileID(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseFileID_Invalid(t *testing.T) {
	_, err := parseFileID("not-hex")
	assert.Error(t, err)
}
