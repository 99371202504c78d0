package utils

import (
	"fmt"
	"strings"
)

func PrintProgress(section string, current int64, total int64, description string) {
	nbBlocks := int64(50)

	if total <= 0 {
		total = 1
	}
	if current < 0 {
		current = 0
	}
	if current > total {
		current = total
	}

	blocks := current * nbBlocks / total
	percentage := current * 100 / total

	bar := fmt.Sprintf("\r[%s%s] %d%% (%d/%d) | %s",
		strings.Repeat("=", int(blocks)),
		strings.Repeat(" ", int(nbBlocks-blocks)),
		percentage,
		current,
		total,
		description)
	fmt.Print(bar)
}
