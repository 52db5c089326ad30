package pathutil_test

import (
	"fmt"

	"newsboard/internal/handler/http/pathutil"
)

// Every detail lookup collapses into one label regardless of the id or mount point.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/news/1"))
	fmt.Println(pathutil.NormalizePath("/api/news/2"))
	fmt.Println(pathutil.NormalizePath("/api/weather?city=Beijing"))

	// Output:
	// /news/:id
	// /news/:id
	// /weather
}
