// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package readingtime estimates how long a post takes to read.
package readingtime

import "strings"

// wordsPerMinute is the assumed average reading speed.
const wordsPerMinute = 200

// WordCount returns the number of whitespace-separated words in content.
func WordCount(content string) int {
	return len(strings.Fields(content))
}

// Minutes returns the estimated reading time in whole minutes, rounded
// up. Non-empty content always reads as at least one minute.
func Minutes(content string) int {
	words := WordCount(content)
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
