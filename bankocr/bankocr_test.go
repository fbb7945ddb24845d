package bankocr_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/katas/bankocr"
)

func TestParse(t *testing.T) {
	cases := map[string]string{
		"    _  _     _  _  _  _  _ \n" +
			"  | _| _||_||_ |_   ||_||_|\n" +
			"  ||_  _|  | _||_|  ||_| _|\n": "123456789",
		" _  _  _  _  _  _  _  _  _ \n" +
			"| | _| _|| ||_ |_   ||_||_|\n" +
			"|_||_  _||_| _||_|  ||_| _|\n": "023056789",
		" _  _  _  _  _  _  _  _  _ \n" +
			"|_| _| _||_||_ |_ |_||_||_|\n" +
			"|_||_  _||_| _||_| _||_| _|\n": "823856989",
		// no trailing newline, trailing spaces trimmed
		" _\n" +
			"|_|\n" +
			" _|": "9",
	}
	for in, want := range cases {
		got, err := bankocr.Parse(in)
		require.NoError(t, err, "input:\n%s", in)
		assert.Equal(t, want, got)
	}
}

func TestParse_Errors(t *testing.T) {
	_, err := bankocr.Parse("")
	assert.ErrorIs(t, err, bankocr.ErrInvalidInput)

	_, err = bankocr.Parse(" _ \n| |")
	assert.ErrorIs(t, err, bankocr.ErrInvalidInput)

	_, err = bankocr.Parse(" _  \n| | \n|_| ")
	assert.ErrorIs(t, err, bankocr.ErrInvalidInput)

	_, err = bankocr.Parse(" _  _ \n| ||_|\n|_|| |")
	assert.ErrorIs(t, err, bankocr.ErrIllegible)
	assert.Contains(t, err.Error(), "position 1")
}

func ExampleParse() {
	account := "" +
		"    _  _     _  _  _  _  _ \n" +
		"  | _| _||_||_ |_   ||_||_|\n" +
		"  ||_  _|  | _||_|  ||_| _|\n"
	n, err := bankocr.Parse(account)
	fmt.Println(n, err)
	// Output: 123456789 <nil>
}
