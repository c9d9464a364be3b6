package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/daystram/bitshogi/bitops"
	"github.com/daystram/bitshogi/geometry"
)

var errValidation = errors.New("validation failed")

func validate() error {
	log.Println("============ validate")
	var failed []string
	for _, c := range []struct {
		name string
		f    func() bool
	}{
		{name: "geometric masks", f: geometry.ValidateMasks},
		{name: "4-bit lookup tables", f: bitops.ValidateLookupTables},
		{name: "de bruijn table", f: bitops.ValidateDeBruijnSequence},
	} {
		status := "ok"
		if !c.f() {
			status = "FAILED"
			failed = append(failed, c.name)
		}
		fmt.Printf("%-20s %s\n", c.name, status)
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %s", errValidation, strings.Join(failed, ", "))
	}
	return nil
}
