package main

import (
	"fmt"
	"log"

	"github.com/sugawarayuuta/sonnet"

	"github.com/daystram/bitshogi/bitops"
	"github.com/daystram/bitshogi/platform"
)

type diagnostics struct {
	Capabilities platform.Capabilities     `json:"capabilities"`
	PopCount     platform.PopCountStrategy `json:"popcount"`
	BitScan      platform.BitScanStrategy  `json:"bitscan"`
}

func diag(asJSON bool) error {
	d := diagnostics{
		Capabilities: platform.Get(),
		PopCount:     bitops.BestPopCount().Strategy,
		BitScan:      bitops.BestBitScan().Strategy,
	}
	if asJSON {
		b, err := sonnet.Marshal(d)
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	log.Println("============ diag")
	fmt.Println("arch:", d.Capabilities.Arch)
	fmt.Println("hardware popcount:", d.Capabilities.HasPopCount)
	fmt.Println("hardware bitscan:", d.Capabilities.HasBitScan)
	fmt.Println("popcount strategy:", d.PopCount)
	fmt.Println("bitscan strategy:", d.BitScan)
	return nil
}
