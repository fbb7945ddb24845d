package shortener_test

import (
	"fmt"
	"unicode/utf8"

	"github.com/katalvlaran/katas/shortener"
)

func Example() {
	url := "https://en.wikipedia.org/wiki/URL_shortening"
	code, _ := shortener.Encode(url)
	back, _ := shortener.Decode(code)

	fmt.Println(len(url), utf8.RuneCountInString(code))
	fmt.Println(back)
	// Output:
	// 44 22
	// https://en.wikipedia.org/wiki/URL_shortening
}
