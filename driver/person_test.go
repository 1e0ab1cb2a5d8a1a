package driver

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godis-dequeue/datastruct/list"
)

func TestPersonCodec(t *testing.T) {
	testCases := []struct {
		name     string
		input    Person
		expected Person
	}{
		{
			name:     "scenario record",
			input:    Person{Age: 21, Name: "Alice Johnson"},
			expected: Person{Age: 21, Name: "Alice Johnson"},
		},
		{
			name:     "empty name",
			input:    Person{Age: 0},
			expected: Person{Age: 0},
		},
		{
			name:     "negative age",
			input:    Person{Age: -7, Name: "x"},
			expected: Person{Age: -7, Name: "x"},
		},
		{
			name:     "longest name",
			input:    Person{Age: 1, Name: strings.Repeat("n", NameSize-1)},
			expected: Person{Age: 1, Name: strings.Repeat("n", NameSize-1)},
		},
		{
			name:     "name is truncated",
			input:    Person{Age: 1, Name: strings.Repeat("n", NameSize+5)},
			expected: Person{Age: 1, Name: strings.Repeat("n", NameSize-1)},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := EncodePerson(tc.input)
			require.Len(t, buf, PersonSize)
			assert.Equal(t, byte(0), buf[PersonSize-1])
			got, err := DecodePerson(buf)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestDecodePersonWrongSize(t *testing.T) {
	_, err := DecodePerson(make([]byte, PersonSize-1))
	assert.ErrorIs(t, err, list.ErrorInvalidArgument)
	_, err = DecodePerson(nil)
	assert.ErrorIs(t, err, list.ErrorInvalidArgument)
}

func TestPersonString(t *testing.T) {
	assert.Equal(t, `{35, "Bob Smith"}`, Person{Age: 35, Name: "Bob Smith"}.String())
}
