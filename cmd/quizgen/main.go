// Command quizgen generates a quiz from a document, either by posting it to a
// running doc-quiz server or by running extraction and generation locally.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
