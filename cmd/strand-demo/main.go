// Command strand-demo batches a few edits over the text passed on the
// command line and prints each stage.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/iw2rmb/strand/str"
)

func main() {
	log.SetFlags(0)

	text := "  ça roule, le monde est 🌍  "
	if len(os.Args) > 1 {
		text = strings.Join(os.Args[1:], " ")
	}

	s := str.FromString(text)
	fmt.Printf("input:      %q (%d codepoints, %d bytes)\n", s.Text(), s.Len(), s.ByteLen())

	out, err := s.Edit().
		Trim().
		Capitalize().
		Append([]byte(" !")).
		Build()
	if err != nil {
		log.Fatalf("strand-demo: %v", err)
	}
	fmt.Printf("batched:    %q\n", out.Text())

	rev := out.Clone()
	if err := rev.Reverse(); err != nil {
		log.Fatalf("strand-demo: %v", err)
	}
	fmt.Printf("reversed:   %q\n", rev.Text())

	if idx, ok := out.IndexOfIgnoreCase([]byte("monde")); ok {
		fmt.Printf("search:     %q at codepoint %d\n", "monde", idx)
	} else {
		fmt.Printf("search:     %q not found\n", "monde")
	}
}
